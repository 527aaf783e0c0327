package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"m4-preview/internal/mesh"
	"m4-preview/internal/numeric"
	"m4-preview/internal/raster"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	OutputDir  string `json:"output_dir"`
	TextureDir string `json:"texture_dir"`
	Texture    string `json:"texture"`

	// Scene
	Mesh        string     `json:"mesh"`
	Tilt        [3]float64 `json:"tilt_axis"`
	TiltDeg     float64    `json:"tilt_deg"` // zero means the default tilt
	Distance    float64    `json:"camera_distance"`
	Elevation   float64    `json:"camera_elevation"`
	FOVDeg      float64    `json:"fov_deg"`
	Near        float64    `json:"near"`
	Far         float64    `json:"far"`
	Ortho       bool       `json:"ortho"`
	OrthoHeight float64    `json:"ortho_height"`

	// Render settings
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Supersample int      `json:"supersample"`
	Frames      int      `json:"frames"`
	Format      string   `json:"format"`
	Precision   string   `json:"precision"`
	Filter      string   `json:"filter"`
	Background  [4]uint8 `json:"background"`
	Cull        *bool    `json:"cull_back_faces"`
	Badge       bool     `json:"badge"`
	Workers     int      `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Mesh      string
	Format    string
	Precision string
	Frames    int
	Size      int
	Workers   int
}

// Resolve applies flag overrides, then fills any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Mesh != "" {
		c.Mesh = flags.Mesh
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Precision != "" {
		c.Precision = flags.Precision
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Size > 0 {
		c.Width, c.Height = flags.Size, flags.Size
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.TextureDir != "" && !filepath.IsAbs(c.TextureDir) {
		if abs, err := filepath.Abs(c.TextureDir); err == nil {
			c.TextureDir = abs
		}
	}

	if c.Mesh == "" {
		c.Mesh = "cube"
	}
	if c.Tilt == [3]float64{} {
		c.Tilt = [3]float64{1, 0, 1}
	}
	if c.TiltDeg == 0 {
		c.TiltDeg = 25
	}
	if c.Distance <= 0 {
		c.Distance = 3
	}
	if c.FOVDeg <= 0 {
		c.FOVDeg = 45
	}
	if c.Near <= 0 {
		c.Near = 0.1
	}
	if c.Far <= c.Near {
		c.Far = 100
	}
	if c.OrthoHeight <= 0 {
		c.OrthoHeight = 2
	}

	// Defaults for render settings
	if c.Width <= 0 {
		c.Width = 256
	}
	if c.Height <= 0 {
		c.Height = c.Width
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 12
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Precision == "" {
		c.Precision = "float32"
	}
	if c.Cull == nil {
		cull := true
		c.Cull = &cull
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate checks names that Resolve cannot default.
func (c *Config) Validate() error {
	if _, ok := numeric.ByName(c.Precision); !ok {
		return fmt.Errorf("config: unknown precision %q (want float32 or float64)", c.Precision)
	}
	switch c.Format {
	case "webp", "tga":
	default:
		return fmt.Errorf("config: unknown format %q (want webp or tga)", c.Format)
	}
	if _, err := raster.ParseFilter(c.Filter); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := mesh.ByName(c.Mesh); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
