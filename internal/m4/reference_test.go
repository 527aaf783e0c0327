package m4

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"m4-preview/internal/numeric"
	"m4-preview/internal/v3"
)

// Cross-checks against mathgl, which shares the column-major layout.

func fromMgl(m mgl32.Mat4) []float64 {
	out := make([]float64, 16)
	for i, v := range m {
		out[i] = float64(v)
	}
	return out
}

func toMgl(b numeric.Buffer) mgl32.Mat4 {
	var m mgl32.Mat4
	for i := range m {
		m[i] = float32(b.At(i))
	}
	return m
}

func TestMatchesMathgl(t *testing.T) {
	axis := mgl32.Vec3{1, 2, 3}.Normalize()

	tests := []struct {
		name string
		got  numeric.Buffer
		want mgl32.Mat4
	}{
		{"Perspective", Perspective(0.9, 1.6, 0.1, 50, nil), mgl32.Perspective(0.9, 1.6, 0.1, 50)},
		{"RotationX", RotationX(0.4, nil), mgl32.HomogRotate3DX(0.4)},
		{"RotationY", RotationY(0.4, nil), mgl32.HomogRotate3DY(0.4)},
		{"RotationZ", RotationZ(0.4, nil), mgl32.HomogRotate3DZ(0.4)},
		{"AxisRotation", AxisRotation(v3.From(1, 2, 3), 0.4, nil), mgl32.HomogRotate3D(0.4, axis)},
		{"Translation", Translation(v3.From(1, 2, 3), nil), mgl32.Translate3D(1, 2, 3)},
		{"Scaling", Scaling(v3.From(1, 2, 3), nil), mgl32.Scale3D(1, 2, 3)},
		{"Multiply", Multiply(m, invertible, nil), toMgl(m).Mul4(toMgl(invertible))},
		{"Transpose", Transpose(invertible, nil), toMgl(invertible).Transpose()},
		{"Invert", Invert(invertible, nil), toMgl(invertible).Inv()},
		{
			"LookAt",
			Invert(LookAt(v3.From(3, 4, 5), v3.From(0, 1, 0), v3.From(0, 1, 0), nil), nil),
			mgl32.LookAtV(mgl32.Vec3{3, 4, 5}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 1, 0}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkBuffer(t, tt.name, tt.got, fromMgl(tt.want))
		})
	}
}

func TestDeterminantMatchesMathgl(t *testing.T) {
	c := Multiply(Perspective(1, 2, 1, 9, nil), AxisRotation(v3.From(0, 1, 1), 0.3, nil), nil)
	want := float64(toMgl(c).Det())
	if got := Determinant(c); !near(got, want) {
		t.Errorf("det = %v, want %v", got, want)
	}
}

func TestTransformPointMatchesMathgl(t *testing.T) {
	p := Multiply(Perspective(1, 2, 1, 9, nil), Translation(v3.From(0, 0, -4), nil), nil)
	want := mgl32.TransformCoordinate(mgl32.Vec3{0.5, -0.25, 1}, toMgl(p))
	got := TransformPoint(p, v3.From(0.5, -0.25, 1), nil)
	checkBuffer(t, "point", got, []float64{float64(want[0]), float64(want[1]), float64(want[2])})

	wantDir := mgl32.TransformNormal(mgl32.Vec3{0.5, -0.25, 1}, toMgl(p))
	gotDir := TransformDirection(p, v3.From(0.5, -0.25, 1), nil)
	checkBuffer(t, "direction", gotDir, []float64{float64(wantDir[0]), float64(wantDir[1]), float64(wantDir[2])})
}
