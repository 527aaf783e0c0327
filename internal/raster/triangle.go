package raster

import (
	"image"
	"math"

	"m4-preview/internal/scene"
)

// Tri is one screen-space triangle ready for rasterization.
type Tri struct {
	P     [3]scene.Projected
	UV    [3][2]float64
	HasUV bool
	Shade float64 // flat lighting scalar from LightConfig.ComputeShade
}

// Surface is what a triangle is painted with: a texture, or a flat color when
// Tex is nil.
type Surface struct {
	Tex    *image.NRGBA
	Filter Filter
	R, G   uint8
	B, A   uint8
}

// backFacing reports whether the triangle winds clockwise on the y-up NDC
// plane, i.e. counter-clockwise in y-down pixel coordinates.
func (t *Tri) backFacing() bool {
	p := &t.P
	area2 := (p[1].X-p[0].X)*(p[2].Y-p[0].Y) - (p[2].X-p[0].X)*(p[1].Y-p[0].Y)
	return area2 >= 0
}

// RasterizeTriangle fills t into fb with z-buffering, sRGB-correct flat
// lighting and ACES tone mapping. Triangles touching a vertex behind the near
// plane are dropped rather than clipped.
//
// This is the HOT PATH, with zero allocation in the pixel loop.
func RasterizeTriangle(fb *FrameBuffer, t *Tri, s *Surface, lc *LightConfig, cull bool) {
	for _, p := range t.P {
		if p.Behind {
			return
		}
	}
	if cull && t.backFacing() {
		return
	}

	x0, y0, z0 := t.P[0].X, t.P[0].Y, t.P[0].Depth
	x1, y1, z1 := t.P[1].X, t.P[1].Y, t.P[1].Depth
	x2, y2, z2 := t.P[2].X, t.P[2].Y, t.P[2].Depth

	hasUV := t.HasUV && s.Tex != nil
	u0, v0 := t.UV[0][0], t.UV[0][1]
	u1, v1 := t.UV[1][0], t.UV[1][1]
	u2, v2 := t.UV[2][0], t.UV[2][1]

	// Bounding box, clamped to the buffer
	minX := int(math.Max(math.Floor(math.Min(math.Min(x0, x1), x2)), 0))
	maxX := int(math.Min(math.Ceil(math.Max(math.Max(x0, x1), x2)), float64(fb.Width-1)))
	minY := int(math.Max(math.Floor(math.Min(math.Min(y0, y1), y2)), 0))
	maxY := int(math.Min(math.Ceil(math.Max(math.Max(y0, y1), y2)), float64(fb.Height-1)))
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	// Untextured surfaces light to one color.
	fr, fg, fbl := lc.shadeColor(s.R, s.G, s.B, t.Shade)

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			cr, cg, cb, ca := fr, fg, fbl, s.A
			if hasUV {
				u := w0*u0 + w1*u1 + w2*u2
				v := w0*v0 + w1*v1 + w2*v2
				var tr, tg, tb uint8
				tr, tg, tb, ca = SampleTexture(s.Tex, u, v, s.Filter)
				cr, cg, cb = lc.shadeColor(tr, tg, tb, t.Shade)
			}

			// Skip transparent texels
			if ca < 8 {
				continue
			}
			fb.ZBuf[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = cr
			fb.Color[pxIdx+1] = cg
			fb.Color[pxIdx+2] = cb
			fb.Color[pxIdx+3] = ca
		}
	}
}
