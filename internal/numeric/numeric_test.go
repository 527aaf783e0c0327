package numeric

import "testing"

func TestDefaultTypeSwitch(t *testing.T) {
	if _, ok := New(3).(Float32s); !ok {
		t.Fatalf("initial default is not Float32Array")
	}

	before := New(16)
	old := SetDefaultType(Array)
	defer SetDefaultType(old)

	after := New(16)
	if _, ok := after.(Float64s); !ok {
		t.Errorf("after SetDefaultType(Array): got %T", after)
	}
	if _, ok := before.(Float32s); !ok {
		t.Errorf("earlier buffer changed kind: %T", before)
	}

	if prev := SetDefaultType(nil); prev == nil {
		t.Errorf("SetDefaultType returned nil previous type")
	}
	if _, ok := New(1).(Float32s); !ok {
		t.Errorf("nil type did not restore Float32Array")
	}
}

func TestFloat32Rounding(t *testing.T) {
	b := Float32Array(1)
	b.Set(0, 0.1)
	if got := b.At(0); got != float64(float32(0.1)) {
		t.Errorf("At = %v, want float32-rounded 0.1", got)
	}
}

func TestOf(t *testing.T) {
	b := Of(1, 2, 3)
	if b.Len() != 3 || b.At(2) != 3 {
		t.Errorf("Of = %v", Floats(b))
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"float32", "float64", "Array", ""} {
		if _, ok := ByName(name); !ok {
			t.Errorf("ByName(%q) not found", name)
		}
	}
	if _, ok := ByName("int8"); ok {
		t.Errorf("ByName(int8) found")
	}
}
