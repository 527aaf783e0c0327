// Package scene builds the camera, model and projection matrices for the
// preview renderer and projects mesh vertices to screen space.
package scene

import (
	"m4-preview/internal/m4"
	"m4-preview/internal/mesh"
	"m4-preview/internal/numeric"
	"m4-preview/internal/v3"
)

// Camera describes a look-at camera with either a perspective or an
// orthographic lens.
type Camera struct {
	Eye    [3]float64
	Target [3]float64
	Up     [3]float64

	FOVDeg      float64 // vertical field of view, perspective only
	Near, Far   float64
	Ortho       bool
	OrthoHeight float64 // visible height at any depth, ortho only
}

func vec(a [3]float64) v3.Vec3 {
	return v3.From(a[0], a[1], a[2])
}

// World returns the camera-to-world matrix.
func (c Camera) World(dst m4.Mat4) m4.Mat4 {
	return m4.LookAt(vec(c.Eye), vec(c.Target), vec(c.Up), dst)
}

// View returns the world-to-camera matrix.
func (c Camera) View(dst m4.Mat4) m4.Mat4 {
	w := c.World(dst)
	return m4.Invert(w, w)
}

// Projection returns the camera's projection for a viewport of the given
// width/height ratio.
func (c Camera) Projection(aspect float64, dst m4.Mat4) m4.Mat4 {
	if c.Ortho {
		h := c.OrthoHeight / 2
		w := h * aspect
		return m4.Ortho(-w, w, -h, h, c.Near, c.Far, dst)
	}
	return m4.Perspective(m4.DegToRad(c.FOVDeg), aspect, c.Near, c.Far, dst)
}

// ViewProjection returns Projection · View.
func (c Camera) ViewProjection(aspect float64, dst m4.Mat4) m4.Mat4 {
	p := c.Projection(aspect, nil)
	return m4.Multiply(p, c.View(nil), dst)
}

// Orbit returns c with its eye rotated by angle radians about the vertical
// axis through the target.
func Orbit(c Camera, angle float64) Camera {
	rel := v3.Subtract(vec(c.Eye), vec(c.Target), nil)
	m4.TransformDirection(m4.RotationY(angle, nil), rel, rel)
	for k := 0; k < 3; k++ {
		c.Eye[k] = c.Target[k] + rel.At(k)
	}
	return c
}

// Object places a mesh in the world.
type Object struct {
	Mesh     *mesh.Mesh
	Position [3]float64
	Axis     [3]float64 // rotation axis, need not be unit length
	AngleDeg float64
	Scale    [3]float64 // zero means 1,1,1
}

// World returns the object-to-world matrix: translate, then rotate about
// Axis, then scale, each in the local frame of the previous step.
func (o Object) World(dst m4.Mat4) m4.Mat4 {
	w := m4.Translation(vec(o.Position), dst)
	if o.AngleDeg != 0 && o.Axis != [3]float64{} {
		m4.AxisRotate(w, vec(o.Axis), m4.DegToRad(o.AngleDeg), w)
	}
	s := o.Scale
	if s == [3]float64{} {
		s = [3]float64{1, 1, 1}
	}
	return m4.Scale(w, vec(s), w)
}

// Projected is a vertex in screen space. X and Y are pixels from the top-left
// corner. Depth is the camera-space z, so nearer points have larger values.
type Projected struct {
	X, Y   float64
	Depth  float64
	Behind bool // closer than the near plane; triangles using it are skipped
}

// Project maps object-space vertices through modelView and proj onto a
// width x height viewport.
func Project(modelView, proj m4.Mat4, near float64, verts [][3]float32, width, height int) []Projected {
	out := make([]Projected, len(verts))

	// Scratch buffers reused for every vertex.
	in := numeric.Float64s{0, 0, 0}
	eye := numeric.Float64s{0, 0, 0}
	ndc := numeric.Float64s{0, 0, 0}

	hw := float64(width) / 2
	hh := float64(height) / 2
	for i, v := range verts {
		in[0], in[1], in[2] = float64(v[0]), float64(v[1]), float64(v[2])
		m4.TransformPoint(modelView, in, eye)
		m4.TransformPoint(proj, eye, ndc)
		out[i] = Projected{
			X:      (ndc[0] + 1) * hw,
			Y:      (1 - ndc[1]) * hh,
			Depth:  eye[2],
			Behind: -eye[2] < near,
		}
	}
	return out
}

// FaceNormal returns the unit world-space normal of the triangle a, b, c
// (counter-clockwise) under world.
func FaceNormal(world m4.Mat4, a, b, c [3]float32) v3.Vec {
	p0 := v3.Vec{float64(a[0]), float64(a[1]), float64(a[2])}
	p1 := v3.Vec{float64(b[0]), float64(b[1]), float64(b[2])}
	p2 := v3.Vec{float64(c[0]), float64(c[1]), float64(c[2])}
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	return m4.Load(world).MulNormal(n).Normalize()
}
