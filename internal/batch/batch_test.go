package batch

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/webp"

	"m4-preview/internal/mesh"
	"m4-preview/internal/raster"
	"m4-preview/internal/scene"
)

func testConfig(t *testing.T, format string) Config {
	t.Helper()
	return Config{
		OutputDir: t.TempDir(),
		Format:    format,
		Frames:    4,
		Camera: scene.Camera{
			Eye:    [3]float64{0, 1, 3},
			Up:     [3]float64{0, 1, 0},
			FOVDeg: 45,
			Near:   0.1,
			Far:    100,
		},
		Objects: []scene.Object{{Mesh: mesh.Cube(), Axis: [3]float64{0, 1, 0}, AngleDeg: 30}},
		Render: raster.Options{
			Width:         24,
			Height:        16,
			Supersample:   2,
			CullBackFaces: true,
		},
		Workers: 2,
		Quiet:   true,
	}
}

func TestRunTGA(t *testing.T) {
	cfg := testConfig(t, "tga")
	results := Run(cfg)
	if len(results) != cfg.Frames {
		t.Fatalf("got %d results, want %d", len(results), cfg.Frames)
	}
	for i, r := range results {
		if !r.Success {
			t.Fatalf("frame %d failed: %s", i, r.Error)
		}
		if r.Frame != i || r.Name != FrameName(i, "tga") {
			t.Errorf("result %d: frame=%d name=%q", i, r.Frame, r.Name)
		}
		f, err := os.Open(filepath.Join(cfg.OutputDir, r.Name))
		if err != nil {
			t.Fatal(err)
		}
		img, err := tga.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", r.Name, err)
		}
		if b := img.Bounds(); b.Dx() != 24 || b.Dy() != 16 {
			t.Errorf("%s: size %dx%d, want 24x16", r.Name, b.Dx(), b.Dy())
		}
		// The cube sits at the origin, so the center pixel is covered from
		// every orbit angle.
		if _, _, _, a := img.At(12, 8).RGBA(); a == 0 {
			t.Errorf("%s: center pixel transparent", r.Name)
		}
	}
}

func TestRunWebP(t *testing.T) {
	cfg := testConfig(t, "webp")
	cfg.Frames = 2
	tex := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := range tex.Pix {
		tex.Pix[i] = 255
	}
	cfg.Texture = tex
	cfg.Badge = true

	for _, r := range Run(cfg) {
		if !r.Success {
			t.Fatalf("frame %d failed: %s", r.Frame, r.Error)
		}
		data, err := os.ReadFile(filepath.Join(cfg.OutputDir, r.Name))
		if err != nil {
			t.Fatal(err)
		}
		img, err := webp.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("decode %s: %v", r.Name, err)
		}
		if b := img.Bounds(); b.Dx() != 24 || b.Dy() != 16 {
			t.Errorf("%s: size %dx%d", r.Name, b.Dx(), b.Dy())
		}
	}
}

func TestRunReportsFailures(t *testing.T) {
	cfg := testConfig(t, "bmp")
	cfg.Frames = 2
	for _, r := range Run(cfg) {
		if r.Success || r.Error == "" {
			t.Errorf("frame %d: success=%v error=%q, want failure", r.Frame, r.Success, r.Error)
		}
	}
}

func TestFrameAngle(t *testing.T) {
	if a := FrameAngle(0, 8); a != 0 {
		t.Errorf("FrameAngle(0, 8) = %v", a)
	}
	if a := FrameAngle(2, 8); math.Abs(a-math.Pi/2) > 1e-12 {
		t.Errorf("FrameAngle(2, 8) = %v, want pi/2", a)
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{1, 2, 3, 255})
	var buf bytes.Buffer
	if err := Encode(&buf, img, "gif"); err == nil {
		t.Error("Encode(gif) returned no error")
	}
	if err := Encode(&buf, img, "tga"); err != nil || buf.Len() == 0 {
		t.Errorf("Encode(tga) = %v, %d bytes", err, buf.Len())
	}
}

func TestManifest(t *testing.T) {
	results := []Result{
		{Name: FrameName(0, "webp"), Frame: 0, Angle: 0, Success: true},
		{Name: FrameName(1, "webp"), Frame: 1, Angle: math.Pi / 2, Error: "boom"},
		{Name: FrameName(2, "webp"), Frame: 2, Angle: math.Pi, Success: true},
	}
	m := NewManifest("cube", "float32", 64, 48, results)
	if len(m.Frames) != 2 {
		t.Fatalf("got %d frames, want 2 successful", len(m.Frames))
	}
	if m.Frames[1].Frame != 2 || math.Abs(m.Frames[1].AngleDeg-180) > 1e-9 {
		t.Errorf("entry 1 = %+v", m.Frames[1])
	}

	path := filepath.Join(t.TempDir(), "manifest.json")
	if err := WriteManifest(path, m); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var back Manifest
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Mesh != "cube" || back.Width != 64 || len(back.Frames) != 2 || back.Frames[0].Image != "frame_000.webp" {
		t.Errorf("round trip = %+v", back)
	}
}
