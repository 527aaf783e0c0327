package raster

import (
	"math"

	"m4-preview/internal/v3"
)

// LightConfig holds precomputed lighting parameters. Directions are in world
// space and point from the surface toward the light.
type LightConfig struct {
	LightDir  v3.Vec
	RimDir    v3.Vec
	ViewDir   v3.Vec
	HalfMain  v3.Vec // precomputed half-vector for Blinn-Phong
	Ambient   float64
	Hemi      float64
	Direct    float64
	Rim       float64
	SpecInt   float64
	SpecPow   float64
	Exposure  float64
	SRGBGamma float64
	InvGamma  float64
}

// DefaultLightConfig returns a key light from the upper right front, a rim
// light from behind and a viewer along +Z.
func DefaultLightConfig() LightConfig {
	lc := LightConfig{
		LightDir:  v3.Vec{180, 260, 140}.Normalize(),
		RimDir:    v3.Vec{-160, 130, -210}.Normalize(),
		Ambient:   0.35,
		Hemi:      0.30,
		Direct:    0.90,
		Rim:       0.30,
		SpecInt:   0.35,
		SpecPow:   12.0,
		Exposure:  1.05,
		SRGBGamma: 2.2,
		InvGamma:  1.0 / 2.2,
	}
	lc.SetViewDir(v3.Vec{0, 0, 1})
	return lc
}

// SetViewDir updates the viewer direction and the Blinn-Phong half vector.
func (lc *LightConfig) SetViewDir(d v3.Vec) {
	lc.ViewDir = d.Normalize()
	lc.HalfMain = lc.LightDir.Add(lc.ViewDir).Normalize()
}

// ComputeShade returns the combined lighting scalar for a unit face normal.
func (lc *LightConfig) ComputeShade(normal v3.Vec) float64 {
	// Lambertian (abs for double-sided)
	ndlMain := math.Abs(normal.Dot(lc.LightDir))
	ndlRim := math.Abs(normal.Dot(lc.RimDir))

	// Hemisphere fill, brighter for upward faces
	hemi := normal[1]*0.5 + 0.5
	hemiLight := hemi * lc.Hemi

	// Blinn-Phong specular
	ndh := normal.Dot(lc.HalfMain)
	if ndh < 0 {
		ndh = 0
	}
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + hemiLight + ndlMain*lc.Direct + ndlRim*lc.Rim + spec
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

// shadeColor lights an sRGB color and returns it re-encoded.
func (lc *LightConfig) shadeColor(cr, cg, cb uint8, shade float64) (uint8, uint8, uint8) {
	k := shade * lc.Exposure
	r := math.Pow(ACESTonemap(srgbToLinear[cr]*k), lc.InvGamma)
	g := math.Pow(ACESTonemap(srgbToLinear[cg]*k), lc.InvGamma)
	b := math.Pow(ACESTonemap(srgbToLinear[cb]*k), lc.InvGamma)
	return clamp255(r * 255), clamp255(g * 255), clamp255(b * 255)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
