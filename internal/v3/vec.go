// Package v3 implements 3-element vector math over numeric buffers.
//
// Every function that produces a vector takes a trailing dst. A nil dst
// allocates a buffer of the current default type; otherwise the result is
// written into dst (which must hold 3 elements) and dst is returned. Inputs
// are read before dst is written, so dst may alias an input.
package v3

import (
	"math"

	"m4-preview/internal/numeric"
)

// Vec3 is a 3-element buffer. Whether it holds a point or a direction is up
// to the caller.
type Vec3 = numeric.Buffer

// Vec is a 3-component vector held by value. It is the working form the
// buffer functions compute in, and never touches the heap.
type Vec [3]float64

// Load copies the first three elements of b.
func Load(b Vec3) Vec {
	return Vec{b.At(0), b.At(1), b.At(2)}
}

// Store writes v into dst, allocating when dst is nil, and returns dst.
func (v Vec) Store(dst Vec3) Vec3 {
	if dst == nil {
		dst = numeric.New(3)
	}
	dst.Set(0, v[0])
	dst.Set(1, v[1])
	dst.Set(2, v[2])
	return dst
}

func (a Vec) Add(b Vec) Vec {
	return Vec{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec) Sub(b Vec) Vec {
	return Vec{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (a Vec) Mul(b Vec) Vec {
	return Vec{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func (a Vec) Div(b Vec) Vec {
	return Vec{a[0] / b[0], a[1] / b[1], a[2] / b[2]}
}

func (v Vec) Scale(s float64) Vec {
	return Vec{v[0] * s, v[1] * s, v[2] * s}
}

func (a Vec) Dot(b Vec) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross is the right-handed cross product a × b.
func (a Vec) Cross(b Vec) Vec {
	return Vec{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec) LenSq() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

func (v Vec) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize returns v divided by its length, or the zero vector when the
// length is exactly zero.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v[0] / l, v[1] / l, v[2] / l}
}

// Lerp returns a + t*(b-a). t is not clamped.
func (a Vec) Lerp(b Vec, t float64) Vec {
	return Vec{
		a[0] + t*(b[0]-a[0]),
		a[1] + t*(b[1]-a[1]),
		a[2] + t*(b[2]-a[2]),
	}
}
