package scene

import (
	"math"
	"testing"

	"m4-preview/internal/m4"
	"m4-preview/internal/v3"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-4
}

var cam = Camera{
	Eye:    [3]float64{0, 0, 5},
	Up:     [3]float64{0, 1, 0},
	FOVDeg: 60,
	Near:   0.1,
	Far:    100,
}

func TestViewInvertsWorld(t *testing.T) {
	p := m4.Multiply(cam.World(nil), cam.View(nil), nil)
	if !m4.Load(p).IsIdentity(1e-5) {
		t.Fatalf("World·View = %v", m4.Load(p))
	}
}

func TestProjectCenter(t *testing.T) {
	mv := cam.View(nil)
	proj := cam.Projection(1, nil)
	pts := Project(mv, proj, cam.Near, [][3]float32{{0, 0, 0}, {0, 0, 10}}, 200, 100)

	if !near(pts[0].X, 100) || !near(pts[0].Y, 50) {
		t.Errorf("origin at (%v, %v), want (100, 50)", pts[0].X, pts[0].Y)
	}
	if !near(pts[0].Depth, -5) {
		t.Errorf("origin depth %v, want -5", pts[0].Depth)
	}
	if pts[0].Behind {
		t.Error("origin marked behind")
	}
	if !pts[1].Behind {
		t.Error("point behind the camera not marked")
	}
}

func TestProjectUpIsUp(t *testing.T) {
	pts := Project(cam.View(nil), cam.Projection(1, nil), cam.Near, [][3]float32{{0, 1, 0}, {1, 0, 0}}, 100, 100)
	if pts[0].Y >= 50 {
		t.Errorf("+Y projected below center: y=%v", pts[0].Y)
	}
	if pts[1].X <= 50 {
		t.Errorf("+X projected left of center: x=%v", pts[1].X)
	}
}

func TestOrthoProjection(t *testing.T) {
	c := cam
	c.Ortho = true
	c.OrthoHeight = 4
	pts := Project(c.View(nil), c.Projection(2, nil), c.Near, [][3]float32{{4, 2, 0}}, 200, 100)
	if !near(pts[0].X, 200) || !near(pts[0].Y, 0) {
		t.Errorf("corner at (%v, %v), want (200, 0)", pts[0].X, pts[0].Y)
	}
}

func TestOrbit(t *testing.T) {
	o := Orbit(cam, math.Pi/2)
	want := [3]float64{5, 0, 0}
	for k := range want {
		if !near(o.Eye[k], want[k]) {
			t.Fatalf("eye = %v, want %v", o.Eye, want)
		}
	}
	if cam.Eye != [3]float64{0, 0, 5} {
		t.Fatal("Orbit mutated its argument")
	}
}

func TestObjectWorld(t *testing.T) {
	o := Object{Position: [3]float64{1, 2, 3}, Scale: [3]float64{2, 2, 2}}
	p := m4.TransformPoint(o.World(nil), v3.From(1, 1, 1), nil)
	want := []float64{3, 4, 5}
	for k, w := range want {
		if !near(p.At(k), w) {
			t.Fatalf("point = %v, want %v", v3.Load(p), want)
		}
	}

	r := Object{Axis: [3]float64{0, 0, 3}, AngleDeg: 90}
	q := m4.TransformPoint(r.World(nil), v3.From(1, 0, 0), nil)
	if !near(q.At(0), 0) || !near(q.At(1), 1) {
		t.Fatalf("rotated point = %v, want (0, 1, 0)", v3.Load(q))
	}
}

func TestFaceNormalNonUniformScale(t *testing.T) {
	w := m4.Scaling(v3.From(1, 4, 1), nil)
	// Triangle in the plane x + y = 1.
	n := FaceNormal(w, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}, [3]float32{0, 1, 1})
	if !near(n.Len(), 1) {
		t.Fatalf("|n| = %v, want 1", n.Len())
	}
	// The scaled plane is x + y/4 = 1, whose normal is along (4, 1, 0).
	want := v3.Vec{4, 1, 0}.Normalize()
	for k := range want {
		if !near(n[k], want[k]) {
			t.Fatalf("n = %v, want %v", n, want)
		}
	}
}
