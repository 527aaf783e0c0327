package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadAndResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"mesh": "pyramid", "width": 320, "height": 200, "format": "tga", "cull_back_faces": false}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Resolve(Flags{Frames: 3, Precision: "float64"})

	if cfg.Mesh != "pyramid" || cfg.Width != 320 || cfg.Height != 200 || cfg.Format != "tga" {
		t.Errorf("file values lost: %+v", cfg)
	}
	if cfg.Frames != 3 || cfg.Precision != "float64" {
		t.Errorf("flag overrides lost: frames=%d precision=%q", cfg.Frames, cfg.Precision)
	}
	if cfg.Cull == nil || *cfg.Cull {
		t.Errorf("explicit cull_back_faces=false overridden")
	}
	if cfg.Supersample != 2 || cfg.Workers <= 0 || cfg.FOVDeg != 45 {
		t.Errorf("defaults missing: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{Size: 64})
	if cfg.Width != 64 || cfg.Height != 64 {
		t.Errorf("size flag: %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Mesh != "cube" || cfg.Format != "webp" || cfg.Precision != "float32" || cfg.OutputDir != "renders" {
		t.Errorf("defaults: %+v", cfg)
	}
	if cfg.Cull == nil || !*cfg.Cull {
		t.Error("culling not on by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
		want string
	}{
		{"precision", func(c *Config) { c.Precision = "int8" }, "precision"},
		{"format", func(c *Config) { c.Format = "gif" }, "format"},
		{"filter", func(c *Config) { c.Filter = "cubic" }, "filter"},
		{"mesh", func(c *Config) { c.Mesh = "teapot" }, "mesh"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			cfg.Resolve(Flags{})
			tt.edit(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate = %v, want error mentioning %q", err, tt.want)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load(missing) returned no error")
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("Load(bad) = %v, want parse error", err)
	}
}
