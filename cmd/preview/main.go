package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"m4-preview/internal/batch"
	"m4-preview/internal/config"
	"m4-preview/internal/mesh"
	"m4-preview/internal/numeric"
	"m4-preview/internal/raster"
	"m4-preview/internal/scene"
	"m4-preview/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	meshName := flag.String("mesh", "", "Built-in mesh to render (cube, pyramid)")
	frames := flag.Int("frames", 0, "Number of orbit frames (default: 12)")
	size := flag.Int("size", 0, "Output width and height in pixels (default: 256)")
	format := flag.String("format", "", "Output format: webp or tga (default: webp)")
	precision := flag.String("precision", "", "Default matrix storage: float32 or float64")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Mesh:      *meshName,
		Format:    *format,
		Precision: *precision,
		Frames:    *frames,
		Size:      *size,
		Workers:   *workers,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Storage kind for every matrix allocated from here on.
	kind, _ := numeric.ByName(cfg.Precision)
	numeric.SetDefaultType(kind)

	m, _ := mesh.ByName(cfg.Mesh)
	filter, _ := raster.ParseFilter(cfg.Filter)

	tex := loadTexture(cfg)

	fmt.Printf("Transform preview → %s\n", cfg.Format)
	fmt.Printf("Mesh: %s (%d triangles), Precision: %s\n", m.Name, m.TriangleCount(), cfg.Precision)
	fmt.Printf("Frames: %d, Size: %dx%d, Workers: %d\n", cfg.Frames, cfg.Width, cfg.Height, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		OutputDir: cfg.OutputDir,
		Format:    cfg.Format,
		Frames:    cfg.Frames,
		Camera:    camera(cfg),
		Objects: []scene.Object{{
			Mesh:     m,
			Axis:     cfg.Tilt,
			AngleDeg: cfg.TiltDeg,
		}},
		Texture: tex,
		Badge:   cfg.Badge,
		Render: raster.Options{
			Width:         cfg.Width,
			Height:        cfg.Height,
			Supersample:   cfg.Supersample,
			Filter:        filter,
			Background:    cfg.Background,
			CullBackFaces: *cfg.Cull,
		},
		Workers: cfg.Workers,
	}

	results := batch.Run(batchCfg)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	manifest := batch.NewManifest(m.Name, cfg.Precision, cfg.Width, cfg.Height, results)
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := batch.WriteManifest(manifestPath, manifest); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func camera(cfg config.Config) scene.Camera {
	return scene.Camera{
		Eye:         [3]float64{0, cfg.Elevation, cfg.Distance},
		Up:          [3]float64{0, 1, 0},
		FOVDeg:      cfg.FOVDeg,
		Near:        cfg.Near,
		Far:         cfg.Far,
		Ortho:       cfg.Ortho,
		OrthoHeight: cfg.OrthoHeight,
	}
}

// loadTexture resolves cfg.Texture through the texture index, falling back to
// a direct file path. Missing textures are a warning, not an error.
func loadTexture(cfg config.Config) *image.NRGBA {
	if cfg.Texture == "" {
		return nil
	}

	warn := func(path string, err error) {
		fmt.Fprintf(os.Stderr, "Warning: texture %s: %v\n", path, err)
	}

	if cfg.TextureDir != "" {
		texIndex := texture.BuildIndex(cfg.TextureDir)
		texCache := texture.NewCache(texIndex, warn)
		fmt.Printf("Textures: %d indexed\n", texIndex.Len())
		if tex := texCache.Resolve(cfg.Texture); tex != nil {
			return tex
		}
	}

	tex, err := texture.LoadTexture(cfg.Texture)
	if err != nil {
		warn(cfg.Texture, err)
		return nil
	}
	return tex
}
