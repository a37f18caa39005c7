// SPDX-License-Identifier: MIT

package uniform

import "errors"

var (
	// ErrUnsupportedShape is returned for shapes with no uniform entry point.
	ErrUnsupportedShape = errors.New("uniform: unsupported shape")

	// ErrUnsupportedKind is returned for element types outside
	// float32/float64/int32/uint32, for integer matrices, and for kinds a
	// Block layout cannot store.
	ErrUnsupportedKind = errors.New("uniform: unsupported element kind")

	// ErrOutOfBounds reports a Block write past the end of the buffer.
	ErrOutOfBounds = errors.New("uniform: write out of bounds")

	// ErrMisaligned reports a Block write at an offset that breaks the
	// layout's alignment rule for the value.
	ErrMisaligned = errors.New("uniform: misaligned offset")

	// ErrInvalidSize is returned by NewBlock for a non-positive size.
	ErrInvalidSize = errors.New("uniform: block size must be > 0")
)
