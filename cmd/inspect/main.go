package main

import (
	"flag"
	"fmt"
	"os"

	"m4-preview/internal/batch"
	"m4-preview/internal/config"
	"m4-preview/internal/m4"
	"m4-preview/internal/mesh"
	"m4-preview/internal/numeric"
	"m4-preview/internal/scene"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	frame := flag.Int("frame", 0, "Orbit frame to inspect")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{})
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	kind, _ := numeric.ByName(cfg.Precision)
	numeric.SetDefaultType(kind)

	m, _ := mesh.ByName(cfg.Mesh)
	lo, hi := m.Bounds()
	fmt.Printf("Mesh %s: verts=%d, tris=%d\n", m.Name, len(m.Verts), m.TriangleCount())
	fmt.Printf("  BBox: X[%.2f, %.2f] Y[%.2f, %.2f] Z[%.2f, %.2f]\n", lo[0], hi[0], lo[1], hi[1], lo[2], hi[2])

	cam := scene.Camera{
		Eye:         [3]float64{0, cfg.Elevation, cfg.Distance},
		Up:          [3]float64{0, 1, 0},
		FOVDeg:      cfg.FOVDeg,
		Near:        cfg.Near,
		Far:         cfg.Far,
		Ortho:       cfg.Ortho,
		OrthoHeight: cfg.OrthoHeight,
	}
	angle := batch.FrameAngle(*frame%cfg.Frames, cfg.Frames)
	cam = scene.Orbit(cam, angle)
	aspect := float64(cfg.Width) / float64(cfg.Height)

	obj := scene.Object{Mesh: m, Axis: cfg.Tilt, AngleDeg: cfg.TiltDeg}

	fmt.Printf("Frame %d, orbit %.1f°, precision %s\n", *frame, m4.RadToDeg(angle), cfg.Precision)
	ok := true
	for _, e := range []struct {
		name string
		m    m4.Mat4
	}{
		{"Camera", cam.World(nil)},
		{"View", cam.View(nil)},
		{"Projection", cam.Projection(aspect, nil)},
		{"ViewProjection", cam.ViewProjection(aspect, nil)},
		{"Model", obj.World(nil)},
	} {
		printMatrix(e.name, e.m)
		if !checkInverse(e.m) {
			ok = false
		}
	}

	t := m4.GetTranslation(cam.World(nil), nil)
	s := m4.GetScaling(obj.World(nil), nil)
	fmt.Printf("Eye: [%.4f %.4f %.4f]\n", t.At(0), t.At(1), t.At(2))
	fmt.Printf("Model scale: [%.4f %.4f %.4f]\n", s.At(0), s.At(1), s.At(2))

	if !ok {
		os.Exit(1)
	}
}

// printMatrix prints m row by row; storage is column-major.
func printMatrix(name string, m m4.Mat4) {
	fmt.Printf("%s (det %.6g):\n", name, m4.Determinant(m))
	for r := 0; r < 4; r++ {
		fmt.Printf("  [%10.4f %10.4f %10.4f %10.4f]\n", m.At(r), m.At(4+r), m.At(8+r), m.At(12+r))
	}
}

// checkInverse reports whether m times its inverse is the identity.
func checkInverse(m m4.Mat4) bool {
	p := m4.Multiply(m, m4.Invert(m, nil), nil)
	if m4.Load(p).IsIdentity(1e-4) {
		fmt.Println("  m * inverse(m) = I  OK")
		return true
	}
	fmt.Println("  m * inverse(m) != I  FAIL")
	return false
}
