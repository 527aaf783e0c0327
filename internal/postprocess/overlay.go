package postprocess

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"m4-preview/internal/m4"
	"m4-preview/internal/v3"
)

// Aff3 returns the 2D affine part of a column-major 4x4 matrix: the XY block
// of the upper 3x3 and the XY translation.
func Aff3(m m4.Mat4) f64.Aff3 {
	return f64.Aff3{
		m.At(0), m.At(4), m.At(12),
		m.At(1), m.At(5), m.At(13),
	}
}

// BadgeTransform maps the unit square of a size x size source onto a square
// of side px centered at (cx, cy), turned by angle radians.
func BadgeTransform(size, px int, cx, cy, angle float64) m4.Mat4 {
	k := float64(px) / float64(size)
	half := float64(size) / 2
	m := m4.Translation(v3.From(cx, cy, 0), nil)
	m4.RotateZ(m, angle, m)
	m4.Scale(m, v3.From(k, k, 1), m)
	return m4.Translate(m, v3.From(-half, -half, 0), m)
}

// Overlay composites src over dst through the 2D affine part of xf, which
// maps src pixel coordinates to dst pixel coordinates.
func Overlay(dst *image.NRGBA, src image.Image, xf m4.Mat4) {
	draw.BiLinear.Transform(dst, Aff3(xf), src, src.Bounds(), draw.Over, nil)
}

// Badge draws a square thumbnail of tex in the bottom-left corner of img,
// spun by angle radians. The thumbnail side is a fifth of the shorter image
// side.
func Badge(img *image.NRGBA, tex *image.NRGBA, angle float64) {
	b := img.Bounds()
	side := int(math.Min(float64(b.Dx()), float64(b.Dy())) / 5)
	if side < 4 {
		return
	}
	tb := tex.Bounds()
	size := tb.Dx()
	if tb.Dy() > size {
		size = tb.Dy()
	}
	margin := float64(side) * 0.25
	cx := float64(b.Min.X) + margin + float64(side)/2
	cy := float64(b.Max.Y) - margin - float64(side)/2
	Overlay(img, tex, BadgeTransform(size, side, cx, cy, angle))
}
