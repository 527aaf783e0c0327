// Package numeric holds the storage kinds behind vectors and matrices and the
// process-wide default kind used when an operation is not given a destination.
package numeric

import "sync/atomic"

// Buffer is a fixed-length run of floating-point elements.
// Vectors are 3-element buffers, matrices are 16-element buffers.
type Buffer interface {
	Len() int
	At(i int) float64
	Set(i int, v float64)
}

// Float32s is a typed 32-bit buffer. Values are rounded to float32 on Set.
type Float32s []float32

func (b Float32s) Len() int             { return len(b) }
func (b Float32s) At(i int) float64     { return float64(b[i]) }
func (b Float32s) Set(i int, v float64) { b[i] = float32(v) }

// Float64s is a plain list of float64 values.
type Float64s []float64

func (b Float64s) Len() int             { return len(b) }
func (b Float64s) At(i int) float64     { return b[i] }
func (b Float64s) Set(i int, v float64) { b[i] = v }

// Type constructs a zeroed buffer of n elements.
type Type func(n int) Buffer

// Float32Array allocates Float32s. It is the default type.
func Float32Array(n int) Buffer { return make(Float32s, n) }

// Array allocates Float64s.
func Array(n int) Buffer { return make(Float64s, n) }

var defaultType atomic.Pointer[Type]

func init() {
	t := Type(Float32Array)
	defaultType.Store(&t)
}

// SetDefaultType sets the type used by every operation called without a
// destination and returns the previous one. Buffers allocated earlier keep
// their kind. Call it during start-up, before matrices are built concurrently.
// A nil t restores Float32Array.
func SetDefaultType(t Type) Type {
	if t == nil {
		t = Float32Array
	}
	old := defaultType.Swap(&t)
	return *old
}

// DefaultType returns the current default type.
func DefaultType() Type {
	return *defaultType.Load()
}

// New allocates an n-element buffer of the default type.
func New(n int) Buffer {
	return (*defaultType.Load())(n)
}

// Of allocates a buffer of the default type holding vals.
func Of(vals ...float64) Buffer {
	b := New(len(vals))
	for i, v := range vals {
		b.Set(i, v)
	}
	return b
}

// ByName maps a config precision name to a Type.
func ByName(name string) (Type, bool) {
	switch name {
	case "", "float32", "Float32Array":
		return Float32Array, true
	case "float64", "Array":
		return Array, true
	}
	return nil, false
}

// Floats copies b into a new []float64.
func Floats(b Buffer) []float64 {
	out := make([]float64, b.Len())
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}
