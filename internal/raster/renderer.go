package raster

import (
	"image"

	"m4-preview/internal/m4"
	"m4-preview/internal/numeric"
	"m4-preview/internal/scene"
	"m4-preview/internal/v3"
)

// Options controls one render.
type Options struct {
	Width, Height int
	Supersample   int // the returned image is Width*Supersample x Height*Supersample
	Filter        Filter
	Background    [4]uint8
	CullBackFaces bool
}

// Render draws objects as seen by cam. tex, if non-nil, is applied to every
// object using the mesh UVs.
func Render(cam scene.Camera, objects []scene.Object, tex *image.NRGBA, opts Options) *image.NRGBA {
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	w, h := opts.Width*ss, opts.Height*ss

	fb := NewFrameBuffer(w, h)
	bg := opts.Background
	fb.Fill(bg[0], bg[1], bg[2], bg[3])

	view := cam.View(nil)
	proj := cam.Projection(float64(w)/float64(h), nil)

	lc := DefaultLightConfig()
	lc.SetViewDir(v3.Load(m4.GetAxis(cam.World(nil), 2, nil)))

	surf := Surface{Tex: tex, Filter: opts.Filter, R: 200, G: 200, B: 210, A: 255}
	if tex != nil {
		surf.R, surf.G, surf.B, surf.A = averageColor(tex)
	}

	world := numeric.New(16)
	modelView := numeric.New(16)

	for _, obj := range objects {
		if obj.Mesh == nil || len(obj.Mesh.Verts) == 0 {
			continue
		}
		obj.World(world)
		m4.Multiply(view, world, modelView)

		pts := scene.Project(modelView, proj, cam.Near, obj.Mesh.Verts, w, h)
		verts := obj.Mesh.Verts
		uvs := obj.Mesh.UVs

		draw := func(vi, ti [3]int16) {
			var t Tri
			for k := 0; k < 3; k++ {
				i := int(vi[k])
				if i < 0 || i >= len(pts) {
					return
				}
				t.P[k] = pts[i]
			}
			t.HasUV = true
			for k := 0; k < 3; k++ {
				j := int(ti[k])
				if j < 0 || j >= len(uvs) {
					t.HasUV = false
					break
				}
				t.UV[k] = [2]float64{float64(uvs[j][0]), float64(uvs[j][1])}
			}
			n := scene.FaceNormal(world, verts[vi[0]], verts[vi[1]], verts[vi[2]])
			t.Shade = lc.ComputeShade(n)
			RasterizeTriangle(fb, &t, &surf, &lc, opts.CullBackFaces)
		}

		for _, tri := range obj.Mesh.Tris {
			draw([3]int16{tri.VI[0], tri.VI[1], tri.VI[2]}, [3]int16{tri.TI[0], tri.TI[1], tri.TI[2]})

			// Quad: second triangle
			if tri.Polygon == 4 {
				draw([3]int16{tri.VI[0], tri.VI[2], tri.VI[3]}, [3]int16{tri.TI[0], tri.TI[2], tri.TI[3]})
			}
		}
	}

	return fb.Image()
}

func averageColor(tex *image.NRGBA) (uint8, uint8, uint8, uint8) {
	b := tex.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return 200, 200, 210, 255
	}

	var sumR, sumG, sumB float64
	for y := 0; y < h; y++ {
		off := y * tex.Stride
		for x := 0; x < w; x++ {
			i := off + x*4
			sumR += float64(tex.Pix[i])
			sumG += float64(tex.Pix[i+1])
			sumB += float64(tex.Pix[i+2])
		}
	}
	n := float64(w * h)
	return uint8(sumR/n + 0.5), uint8(sumG/n + 0.5), uint8(sumB/n + 0.5), 255
}
