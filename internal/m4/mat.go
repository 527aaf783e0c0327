// Package m4 implements 4x4 matrix math over numeric buffers.
//
// Matrices are column-major: the element at row r, column c lives at offset
// c*4+r. Offsets 12, 13 and 14 hold the translation and offsets 4*i through
// 4*i+2 hold basis axis i.
//
// Every function that produces a matrix or vector takes a trailing dst. A nil
// dst allocates a buffer of the current default type (see numeric.SetDefaultType);
// otherwise the result is written into dst, which must hold 16 (or 3) elements,
// and dst is returned. All inputs are read before dst is written, so dst may
// alias an input.
//
// Nothing here validates its input. Singular matrices, zero-length axes and
// empty frustums produce Inf or NaN.
package m4

import (
	"math"

	"m4-preview/internal/numeric"
	"m4-preview/internal/v3"
)

// Mat4 is a 16-element column-major buffer.
type Mat4 = numeric.Buffer

// Mat is a column-major 4x4 matrix held by value.
type Mat [16]float64

// Ident is the identity matrix.
var Ident = Mat{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Load copies the 16 elements of b.
func Load(b Mat4) Mat {
	var m Mat
	for i := range m {
		m[i] = b.At(i)
	}
	return m
}

// Store writes m into dst, allocating when dst is nil, and returns dst.
func (m Mat) Store(dst Mat4) Mat4 {
	if dst == nil {
		dst = numeric.New(16)
	}
	for i, v := range m {
		dst.Set(i, v)
	}
	return dst
}

// Mul returns a·b. Applied to a column vector, b acts first.
func (a Mat) Mul(b Mat) Mat {
	var m Mat
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			m[c*4+r] = a[0*4+r]*b[c*4+0] + a[1*4+r]*b[c*4+1] +
				a[2*4+r]*b[c*4+2] + a[3*4+r]*b[c*4+3]
		}
	}
	return m
}

func (m Mat) Transpose() Mat {
	var t Mat
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			t[r*4+c] = m[c*4+r]
		}
	}
	return t
}

// adjugate returns the transposed cofactor matrix of m and its determinant,
// both built from the twelve 2x2 minors of the left and right column pairs.
func (m Mat) adjugate() (Mat, float64) {
	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]
	a30, a31, a32, a33 := m[12], m[13], m[14], m[15]

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	det := b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06

	return Mat{
		a11*b11 - a12*b10 + a13*b09,
		a02*b10 - a01*b11 - a03*b09,
		a31*b05 - a32*b04 + a33*b03,
		a22*b04 - a21*b05 - a23*b03,

		a12*b08 - a10*b11 - a13*b07,
		a00*b11 - a02*b08 + a03*b07,
		a32*b02 - a30*b05 - a33*b01,
		a20*b05 - a22*b02 + a23*b01,

		a10*b10 - a11*b08 + a13*b06,
		a01*b08 - a00*b10 - a03*b06,
		a30*b04 - a31*b02 + a33*b00,
		a21*b02 - a20*b04 - a23*b00,

		a11*b07 - a10*b09 - a12*b06,
		a00*b09 - a01*b07 + a02*b06,
		a31*b01 - a30*b03 - a32*b00,
		a20*b03 - a21*b01 + a22*b00,
	}, det
}

func (m Mat) Det() float64 {
	_, det := m.adjugate()
	return det
}

// Inverse returns the inverse of m. A singular m yields Inf/NaN entries.
func (m Mat) Inverse() Mat {
	adj, det := m.adjugate()
	d := 1 / det
	for i := range adj {
		adj[i] *= d
	}
	return adj
}

// Axis returns basis axis i (0, 1 or 2) from the upper 3x3 block.
func (m Mat) Axis(i int) v3.Vec {
	off := i * 4
	return v3.Vec{m[off], m[off+1], m[off+2]}
}

// WithAxis returns a copy of m with basis axis i replaced by v.
func (m Mat) WithAxis(i int, v v3.Vec) Mat {
	off := i * 4
	m[off], m[off+1], m[off+2] = v[0], v[1], v[2]
	return m
}

// MulPoint transforms a point (w=1) and divides by the resulting w.
func (m Mat) MulPoint(v v3.Vec) v3.Vec {
	x, y, z := v[0], v[1], v[2]
	w := x*m[3] + y*m[7] + z*m[11] + m[15]
	return v3.Vec{
		(x*m[0] + y*m[4] + z*m[8] + m[12]) / w,
		(x*m[1] + y*m[5] + z*m[9] + m[13]) / w,
		(x*m[2] + y*m[6] + z*m[10] + m[14]) / w,
	}
}

// MulDir transforms a direction (w=0). Translation is ignored.
func (m Mat) MulDir(v v3.Vec) v3.Vec {
	x, y, z := v[0], v[1], v[2]
	return v3.Vec{
		x*m[0] + y*m[4] + z*m[8],
		x*m[1] + y*m[5] + z*m[9],
		x*m[2] + y*m[6] + z*m[10],
	}
}

// MulNormal transforms a surface normal by the inverse transpose of m. The
// result is not renormalized.
func (m Mat) MulNormal(v v3.Vec) v3.Vec {
	mi := m.Inverse()
	x, y, z := v[0], v[1], v[2]
	return v3.Vec{
		x*mi[0] + y*mi[1] + z*mi[2],
		x*mi[4] + y*mi[5] + z*mi[6],
		x*mi[8] + y*mi[9] + z*mi[10],
	}
}

// IsIdentity reports whether m is within eps of the identity.
func (m Mat) IsIdentity(eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-Ident[i]) > eps {
			return false
		}
	}
	return true
}
