package batch

import (
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"m4-preview/internal/postprocess"
	"m4-preview/internal/raster"
	"m4-preview/internal/scene"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir string
	Format    string // "webp" or "tga"
	Frames    int
	Camera    scene.Camera
	Objects   []scene.Object
	Texture   *image.NRGBA // optional
	Badge     bool
	Render    raster.Options
	Workers   int
	Quiet     bool
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Name    string
	Frame   int
	Angle   float64 // orbit angle in radians
	Success bool
	Error   string
}

// FrameAngle returns the orbit angle of frame i out of n.
func FrameAngle(i, n int) float64 {
	return 2 * math.Pi * float64(i) / float64(n)
}

// FrameName returns the output file name of frame i, relative to OutputDir.
func FrameName(i int, format string) string {
	return fmt.Sprintf("frame_%03d.%s", i, format)
}

// Run renders all orbit frames using a worker pool.
func Run(cfg Config) []Result {
	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 && !cfg.Quiet {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, idx)
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg Config, i int) Result {
	res := Result{
		Name:  FrameName(i, cfg.Format),
		Frame: i,
		Angle: FrameAngle(i, cfg.Frames),
	}

	cam := scene.Orbit(cfg.Camera, res.Angle)
	img := raster.Render(cam, cfg.Objects, cfg.Texture, cfg.Render)

	// Post-processing: supersample downsample
	if cfg.Render.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Badge && cfg.Texture != nil {
		postprocess.Badge(img, cfg.Texture, res.Angle)
	}

	outPath := filepath.Join(cfg.OutputDir, res.Name)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	f, err := os.Create(outPath)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer f.Close()

	if err := Encode(f, img, cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "webp":
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("batch: webp encode: %w", err)
		}
	case "tga":
		if err := tga.Encode(w, img); err != nil {
			return fmt.Errorf("batch: tga encode: %w", err)
		}
	default:
		return fmt.Errorf("batch: unknown format %q", format)
	}
	return nil
}
