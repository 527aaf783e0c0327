package batch

import (
	"encoding/json"
	"math"
	"os"
)

// Manifest describes one batch run.
type Manifest struct {
	Mesh      string          `json:"mesh"`
	Precision string          `json:"precision"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Frames    []ManifestEntry `json:"frames"`
}

// ManifestEntry represents one rendered frame in the output manifest.
type ManifestEntry struct {
	Frame    int     `json:"frame"`
	AngleDeg float64 `json:"angle_deg"`
	Image    string  `json:"image"`
}

// NewManifest lists the successful frames of results.
func NewManifest(mesh, precision string, width, height int, results []Result) Manifest {
	m := Manifest{
		Mesh:      mesh,
		Precision: precision,
		Width:     width,
		Height:    height,
		Frames:    []ManifestEntry{},
	}
	for _, r := range results {
		if !r.Success {
			continue
		}
		m.Frames = append(m.Frames, ManifestEntry{
			Frame:    r.Frame,
			AngleDeg: r.Angle * 180 / math.Pi,
			Image:    r.Name,
		})
	}
	return m
}

// WriteManifest writes m as indented JSON to path.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
