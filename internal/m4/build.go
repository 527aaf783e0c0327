package m4

import (
	"math"

	"m4-preview/internal/v3"
)

func translation(v v3.Vec) Mat {
	m := Ident
	m[12], m[13], m[14] = v[0], v[1], v[2]
	return m
}

func scaling(v v3.Vec) Mat {
	return Mat{
		v[0], 0, 0, 0,
		0, v[1], 0, 0,
		0, 0, v[2], 0,
		0, 0, 0, 1,
	}
}

func rotationX(a float64) Mat {
	s, c := math.Sincos(a)
	return Mat{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

func rotationY(a float64) Mat {
	s, c := math.Sincos(a)
	return Mat{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

func rotationZ(a float64) Mat {
	s, c := math.Sincos(a)
	return Mat{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// axisRotation is the Rodrigues rotation about axis, which need not be unit length.
func axisRotation(axis v3.Vec, a float64) Mat {
	n := axis.Normalize()
	x, y, z := n[0], n[1], n[2]
	xx, yy, zz := x*x, y*y, z*z
	s, c := math.Sincos(a)
	k := 1 - c
	return Mat{
		xx + (1-xx)*c, x*y*k + z*s, x*z*k - y*s, 0,
		x*y*k - z*s, yy + (1-yy)*c, y*z*k + x*s, 0,
		x*z*k + y*s, y*z*k - x*s, zz + (1-zz)*c, 0,
		0, 0, 0, 1,
	}
}

// Identity sets dst to the identity matrix.
func Identity(dst Mat4) Mat4 {
	return Ident.Store(dst)
}

// Translation sets dst to a matrix that translates by v.
func Translation(v v3.Vec3, dst Mat4) Mat4 {
	return translation(v3.Load(v)).Store(dst)
}

// Scaling sets dst to a matrix that scales each axis by the matching element of v.
func Scaling(v v3.Vec3, dst Mat4) Mat4 {
	return scaling(v3.Load(v)).Store(dst)
}

// RotationX sets dst to a rotation of angle radians about the X axis.
func RotationX(angle float64, dst Mat4) Mat4 {
	return rotationX(angle).Store(dst)
}

// RotationY sets dst to a rotation of angle radians about the Y axis.
func RotationY(angle float64, dst Mat4) Mat4 {
	return rotationY(angle).Store(dst)
}

// RotationZ sets dst to a rotation of angle radians about the Z axis.
func RotationZ(angle float64, dst Mat4) Mat4 {
	return rotationZ(angle).Store(dst)
}

// AxisRotation sets dst to a rotation of angle radians about axis. The axis
// is normalized first; a zero axis gives a degenerate matrix.
func AxisRotation(axis v3.Vec3, angle float64, dst Mat4) Mat4 {
	return axisRotation(v3.Load(axis), angle).Store(dst)
}

// Perspective sets dst to a right-handed perspective projection that maps the
// view-space frustum to clip space with depth in [-1, 1]. fieldOfViewY is in
// radians. zFar may be +Inf, in which case the limit matrix is produced.
func Perspective(fieldOfViewY, aspect, zNear, zFar float64, dst Mat4) Mat4 {
	f := math.Tan(math.Pi*0.5 - 0.5*fieldOfViewY)
	m := Mat{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, 0, -1,
		0, 0, 0, 0,
	}
	if math.IsInf(zFar, 1) {
		m[10] = -1
		m[14] = -2 * zNear
	} else {
		rangeInv := 1 / (zNear - zFar)
		m[10] = (zNear + zFar) * rangeInv
		m[14] = zNear * zFar * rangeInv * 2
	}
	return m.Store(dst)
}

// Ortho sets dst to an orthographic projection of the box bounded by left,
// right, bottom, top, near and far. The depth row is m[10] = 1/(near-far)
// and m[14] = -near/(near-far).
func Ortho(left, right, bottom, top, near, far float64, dst Mat4) Mat4 {
	m := Mat{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, 1 / (near - far), 0,
		(right + left) / (left - right), (top + bottom) / (bottom - top), -near / (near - far), 1,
	}
	return m.Store(dst)
}

// Frustum sets dst to a perspective projection of the frustum whose near
// plane spans left..right and bottom..top. Depth maps to [0, 1].
func Frustum(left, right, bottom, top, near, far float64, dst Mat4) Mat4 {
	dx := right - left
	dy := top - bottom
	dz := near - far
	m := Mat{
		2 * near / dx, 0, 0, 0,
		0, 2 * near / dy, 0, 0,
		(left + right) / dx, (top + bottom) / dy, far / dz, -1,
		0, 0, near * far / dz, 0,
	}
	return m.Store(dst)
}

// LookAt sets dst to the camera-to-world matrix of a camera at eye looking at
// target. The camera looks down its own -Z axis. Invert the result to get a
// view matrix. An up vector parallel to the line of sight gives a degenerate
// matrix.
func LookAt(eye, target, up v3.Vec3, dst Mat4) Mat4 {
	e := v3.Load(eye)
	z := e.Sub(v3.Load(target)).Normalize()
	x := v3.Load(up).Cross(z).Normalize()
	y := z.Cross(x)
	m := Mat{
		x[0], x[1], x[2], 0,
		y[0], y[1], y[2], 0,
		z[0], z[1], z[2], 0,
		e[0], e[1], e[2], 1,
	}
	return m.Store(dst)
}

// DegToRad converts degrees to radians.
func DegToRad(d float64) float64 {
	return d * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(r float64) float64 {
	return r * 180 / math.Pi
}
