package raster

import (
	"fmt"
	"image"
)

// Filter selects how textures are sampled.
type Filter int

const (
	Bilinear Filter = iota
	Nearest
)

// ParseFilter maps a config name to a Filter.
func ParseFilter(s string) (Filter, error) {
	switch s {
	case "", "bilinear":
		return Bilinear, nil
	case "nearest":
		return Nearest, nil
	}
	return 0, fmt.Errorf("raster: unknown filter %q", s)
}

func wrap(t float64) float64 {
	t -= float64(int(t))
	if t < 0 {
		t += 1
	}
	return t
}

// SampleTexture samples tex at (u, v) with wrapping. v = 0 is the top row.
// Accesses tex.Pix directly for performance.
func SampleTexture(tex *image.NRGBA, u, v float64, f Filter) (r, g, b, a uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()
	fx := wrap(u) * float64(w-1)
	fy := wrap(v) * float64(h-1)
	stride := tex.Stride
	pix := tex.Pix

	if f == Nearest {
		i := int(fy+0.5)*stride + int(fx+0.5)*4
		return pix[i], pix[i+1], pix[i+2], pix[i+3]
	}

	x0 := int(fx)
	y0 := int(fy)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	i00 := y0*stride + x0*4
	i10 := y0*stride + x1*4
	i01 := y1*stride + x0*4
	i11 := y1*stride + x1*4

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	var out [4]uint8
	for c := 0; c < 4; c++ {
		s := float64(pix[i00+c])*w00 + float64(pix[i10+c])*w10 +
			float64(pix[i01+c])*w01 + float64(pix[i11+c])*w11
		out[c] = uint8(s + 0.5)
	}
	return out[0], out[1], out[2], out[3]
}
