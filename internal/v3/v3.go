package v3

import (
	"math"

	"m4-preview/internal/numeric"
)

// Create returns a new vector of the default type.
func Create(x, y, z float64) Vec3 {
	return Vec{x, y, z}.Store(nil)
}

// Add sets dst to a + b.
func Add(a, b, dst Vec3) Vec3 {
	return Load(a).Add(Load(b)).Store(dst)
}

// Subtract sets dst to a - b.
func Subtract(a, b, dst Vec3) Vec3 {
	return Load(a).Sub(Load(b)).Store(dst)
}

// Lerp sets dst to a + t*(b-a). t outside [0,1] extrapolates.
func Lerp(a, b Vec3, t float64, dst Vec3) Vec3 {
	return Load(a).Lerp(Load(b), t).Store(dst)
}

// Scale sets dst to v * k.
func Scale(v Vec3, k float64, dst Vec3) Vec3 {
	return Load(v).Scale(k).Store(dst)
}

// DivScalar sets dst to v / k.
func DivScalar(v Vec3, k float64, dst Vec3) Vec3 {
	a := Load(v)
	return Vec{a[0] / k, a[1] / k, a[2] / k}.Store(dst)
}

// Multiply sets dst to the component-wise product of a and b.
func Multiply(a, b, dst Vec3) Vec3 {
	return Load(a).Mul(Load(b)).Store(dst)
}

// Divide sets dst to the component-wise quotient a / b.
func Divide(a, b, dst Vec3) Vec3 {
	return Load(a).Div(Load(b)).Store(dst)
}

// Cross sets dst to a × b.
func Cross(a, b, dst Vec3) Vec3 {
	return Load(a).Cross(Load(b)).Store(dst)
}

func Dot(a, b Vec3) float64 {
	return Load(a).Dot(Load(b))
}

func Length(v Vec3) float64 {
	return Load(v).Len()
}

func LengthSq(v Vec3) float64 {
	return Load(v).LenSq()
}

func Distance(a, b Vec3) float64 {
	return Load(a).Sub(Load(b)).Len()
}

func DistanceSq(a, b Vec3) float64 {
	return Load(a).Sub(Load(b)).LenSq()
}

// Normalize sets dst to v scaled to unit length. A zero vector stays zero.
func Normalize(v, dst Vec3) Vec3 {
	return Load(v).Normalize().Store(dst)
}

// Negate sets dst to -v.
func Negate(v, dst Vec3) Vec3 {
	a := Load(v)
	return Vec{-a[0], -a[1], -a[2]}.Store(dst)
}

// Copy copies v into dst.
func Copy(v, dst Vec3) Vec3 {
	return Load(v).Store(dst)
}

// Min sets dst to the component-wise minimum of a and b.
func Min(a, b, dst Vec3) Vec3 {
	x, y := Load(a), Load(b)
	return Vec{math.Min(x[0], y[0]), math.Min(x[1], y[1]), math.Min(x[2], y[2])}.Store(dst)
}

// Max sets dst to the component-wise maximum of a and b.
func Max(a, b, dst Vec3) Vec3 {
	x, y := Load(a), Load(b)
	return Vec{math.Max(x[0], y[0]), math.Max(x[1], y[1]), math.Max(x[2], y[2])}.Store(dst)
}

// From wraps three float64 values in a Float64s without consulting the
// default type. Handy for literals that feed other operations.
func From(x, y, z float64) Vec3 {
	return numeric.Float64s{x, y, z}
}
