// Package mesh holds triangle meshes fed to the preview renderer.
package mesh

import (
	"fmt"
	"math"
	"sort"
)

// Triangle holds index triples into the vertex and texcoord arrays.
// Polygon == 4 means quad (two triangles: 0-1-2 and 0-2-3).
type Triangle struct {
	Polygon int
	VI      [4]int16
	TI      [4]int16
}

// Mesh holds geometry in object space.
type Mesh struct {
	Name  string
	Verts [][3]float32
	UVs   [][2]float32
	Tris  []Triangle
}

// Bounds returns the object-space bounding box.
func (m *Mesh) Bounds() (min, max [3]float64) {
	min = [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	max = [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range m.Verts {
		for k := 0; k < 3; k++ {
			f := float64(v[k])
			if f < min[k] {
				min[k] = f
			}
			if f > max[k] {
				max[k] = f
			}
		}
	}
	return min, max
}

// TriangleCount returns the number of triangles after splitting quads.
func (m *Mesh) TriangleCount() int {
	n := 0
	for _, t := range m.Tris {
		n++
		if t.Polygon == 4 {
			n++
		}
	}
	return n
}

var builtins = map[string]func() *Mesh{
	"cube":    Cube,
	"pyramid": Pyramid,
}

// ByName returns a fresh copy of a built-in mesh.
func ByName(name string) (*Mesh, error) {
	f, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("mesh: unknown mesh %q (have %v)", name, Names())
	}
	return f(), nil
}

// Names lists the built-in meshes.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

var quadUVs = [][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

// Cube returns a unit cube centered on the origin, one textured quad per face
// wound counter-clockwise when seen from outside.
func Cube() *Mesh {
	faces := [6][4][3]float32{
		{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}},     // +Z
		{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}, // -Z
		{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}},     // +X
		{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}, // -X
		{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}},     // +Y
		{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}, // -Y
	}
	m := &Mesh{Name: "cube", UVs: append([][2]float32(nil), quadUVs...)}
	for _, f := range faces {
		base := int16(len(m.Verts))
		m.Verts = append(m.Verts, f[:]...)
		m.Tris = append(m.Tris, Triangle{
			Polygon: 4,
			VI:      [4]int16{base, base + 1, base + 2, base + 3},
			TI:      [4]int16{0, 1, 2, 3},
		})
	}
	return m
}

// Pyramid returns a square-based pyramid with its base on y = -0.5 and its
// apex at y = 0.5.
func Pyramid() *Mesh {
	m := &Mesh{
		Name: "pyramid",
		Verts: [][3]float32{
			{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5},
			{0, 0.5, 0},
		},
		UVs: [][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}, {0.5, 0}},
	}
	m.Tris = []Triangle{
		{Polygon: 4, VI: [4]int16{3, 2, 1, 0}, TI: [4]int16{0, 1, 2, 3}},
		{Polygon: 3, VI: [4]int16{0, 1, 4}, TI: [4]int16{0, 1, 4}},
		{Polygon: 3, VI: [4]int16{1, 2, 4}, TI: [4]int16{0, 1, 4}},
		{Polygon: 3, VI: [4]int16{2, 3, 4}, TI: [4]int16{0, 1, 4}},
		{Polygon: 3, VI: [4]int16{3, 0, 4}, TI: [4]int16{0, 1, 4}},
	}
	return m
}
