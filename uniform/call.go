// SPDX-License-Identifier: MIT

package uniform

import "unsafe"

// Call is one uniform upload: the arguments of the entry point named by
// Target.Func(Kind).
//
// Ptr addresses the first element of the source matrix. The memory is
// column-major (element (row, col) at col*Rows+row), Rows*Cols elements of
// Kind long, and belongs to the caller: it is only valid for the duration of
// SendUniform.
type Call struct {
	Location  int32
	Target    Target
	Kind      Kind
	Count     int32 // number of values; always 1
	Transpose bool

	// Rows and Cols are the shape of the source matrix. A column vector
	// resolves to a vector Target but keeps its own shape here.
	Rows, Cols int

	Ptr unsafe.Pointer
}

// Len is the number of elements behind Ptr.
func (c Call) Len() int { return c.Rows * c.Cols }

// Float32s views the call data as []float32; nil unless Kind is Float32.
func (c Call) Float32s() []float32 {
	if c.Kind != Float32 || c.Ptr == nil {
		return nil
	}

	return unsafe.Slice((*float32)(c.Ptr), c.Len())
}

// Float64s views the call data as []float64; nil unless Kind is Float64.
func (c Call) Float64s() []float64 {
	if c.Kind != Float64 || c.Ptr == nil {
		return nil
	}

	return unsafe.Slice((*float64)(c.Ptr), c.Len())
}

// Int32s views the call data as []int32; nil unless Kind is Int32.
func (c Call) Int32s() []int32 {
	if c.Kind != Int32 || c.Ptr == nil {
		return nil
	}

	return unsafe.Slice((*int32)(c.Ptr), c.Len())
}

// Uint32s views the call data as []uint32; nil unless Kind is Uint32.
func (c Call) Uint32s() []uint32 {
	if c.Kind != Uint32 || c.Ptr == nil {
		return nil
	}

	return unsafe.Slice((*uint32)(c.Ptr), c.Len())
}

// Sender receives resolved uniform calls. Implementations wrap a graphics API
// binding (glUniform*), or a CPU buffer such as Block.
type Sender interface {
	SendUniform(c Call) error
}

// SenderFunc adapts an ordinary function to Sender.
type SenderFunc func(c Call) error

// SendUniform calls f(c).
func (f SenderFunc) SendUniform(c Call) error { return f(c) }
