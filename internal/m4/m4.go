package m4

import (
	"m4-preview/internal/numeric"
	"m4-preview/internal/v3"
)

// SetDefaultType is numeric.SetDefaultType, re-exported so callers that only
// deal in matrices need not import numeric.
func SetDefaultType(t numeric.Type) numeric.Type {
	return numeric.SetDefaultType(t)
}

// Multiply sets dst to a·b. Transforming a point by the result applies b
// first and then a, so Multiply(m, Translation(v)) moves along m's own axes.
func Multiply(a, b, dst Mat4) Mat4 {
	return Load(a).Mul(Load(b)).Store(dst)
}

// Invert sets dst to the inverse of m.
func Invert(m, dst Mat4) Mat4 {
	return Load(m).Inverse().Store(dst)
}

// Transpose sets dst to the transpose of m.
func Transpose(m, dst Mat4) Mat4 {
	return Load(m).Transpose().Store(dst)
}

// Negate sets dst to -m, element by element.
func Negate(m, dst Mat4) Mat4 {
	a := Load(m)
	for i := range a {
		a[i] = -a[i]
	}
	return a.Store(dst)
}

// Copy copies m into dst.
func Copy(m, dst Mat4) Mat4 {
	return Load(m).Store(dst)
}

func Determinant(m Mat4) float64 {
	return Load(m).Det()
}

// SetTranslation sets dst to m with its translation row replaced by v. The
// homogeneous element m[15] is reset to 1.
func SetTranslation(m Mat4, v v3.Vec3, dst Mat4) Mat4 {
	a := Load(m)
	t := v3.Load(v)
	a[12], a[13], a[14], a[15] = t[0], t[1], t[2], 1
	return a.Store(dst)
}

// GetTranslation sets dst to the translation of m.
func GetTranslation(m Mat4, dst v3.Vec3) v3.Vec3 {
	return v3.Vec{m.At(12), m.At(13), m.At(14)}.Store(dst)
}

// GetAxis sets dst to basis axis index (0, 1 or 2) of m.
func GetAxis(m Mat4, index int, dst v3.Vec3) v3.Vec3 {
	off := index * 4
	return v3.Vec{m.At(off), m.At(off + 1), m.At(off + 2)}.Store(dst)
}

// SetAxis sets dst to m with basis axis index replaced by v.
func SetAxis(m Mat4, v v3.Vec3, index int, dst Mat4) Mat4 {
	return Load(m).WithAxis(index, v3.Load(v)).Store(dst)
}

// GetScaling sets dst to the lengths of the three basis axes of m.
func GetScaling(m Mat4, dst v3.Vec3) v3.Vec3 {
	a := Load(m)
	return v3.Vec{a.Axis(0).Len(), a.Axis(1).Len(), a.Axis(2).Len()}.Store(dst)
}

// Translate sets dst to m translated by v in m's local frame.
func Translate(m Mat4, v v3.Vec3, dst Mat4) Mat4 {
	return Load(m).Mul(translation(v3.Load(v))).Store(dst)
}

// Scale sets dst to m scaled by v along m's local axes.
func Scale(m Mat4, v v3.Vec3, dst Mat4) Mat4 {
	return Load(m).Mul(scaling(v3.Load(v))).Store(dst)
}

// RotateX sets dst to m rotated by angle radians about its local X axis.
func RotateX(m Mat4, angle float64, dst Mat4) Mat4 {
	return Load(m).Mul(rotationX(angle)).Store(dst)
}

// RotateY sets dst to m rotated by angle radians about its local Y axis.
func RotateY(m Mat4, angle float64, dst Mat4) Mat4 {
	return Load(m).Mul(rotationY(angle)).Store(dst)
}

// RotateZ sets dst to m rotated by angle radians about its local Z axis.
func RotateZ(m Mat4, angle float64, dst Mat4) Mat4 {
	return Load(m).Mul(rotationZ(angle)).Store(dst)
}

// AxisRotate sets dst to m rotated by angle radians about axis in m's local frame.
func AxisRotate(m Mat4, axis v3.Vec3, angle float64, dst Mat4) Mat4 {
	return Load(m).Mul(axisRotation(v3.Load(axis), angle)).Store(dst)
}

// TransformPoint sets dst to the point v transformed by m, divided by the
// resulting w.
func TransformPoint(m Mat4, v v3.Vec3, dst v3.Vec3) v3.Vec3 {
	return Load(m).MulPoint(v3.Load(v)).Store(dst)
}

// TransformDirection sets dst to the direction v transformed by the upper
// 3x3 of m. Translation and projection are ignored.
func TransformDirection(m Mat4, v v3.Vec3, dst v3.Vec3) v3.Vec3 {
	return Load(m).MulDir(v3.Load(v)).Store(dst)
}

// TransformNormal sets dst to the normal v transformed by the inverse
// transpose of m, which keeps it perpendicular to surfaces under non-uniform
// scale. The result is not renormalized.
func TransformNormal(m Mat4, v v3.Vec3, dst v3.Vec3) v3.Vec3 {
	return Load(m).MulNormal(v3.Load(v)).Store(dst)
}
