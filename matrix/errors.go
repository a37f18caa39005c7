// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the dimension-mismatch error value.
// This file defines ONLY package-level errors used across the matrix package.
// Checked DMat operations return these (possibly wrapped) and tests match
// them via errors.Is / errors.As. Panics are reserved for programming errors:
// out-of-range indexing, static shape misuse, Must* forms.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached with denseErrorf or
// matrixErrorf at the detection site; callers still use errors.Is.

var (
	// ErrBadShape is returned when nested input is ragged (columns or rows of
	// unequal length).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Checked row/column primitives return it; indexers (At/Set) panic with it.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub of different shapes, or Dot where a.Cols != b.Rows.
	// Every *DimensionsMismatchError matches it via errors.Is.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)

// DimensionsMismatchError carries both shapes of a failed DMat operation as
// human-readable strings, e.g. Expected "3x2", Actual "2x2".
type DimensionsMismatchError struct {
	Expected string
	Actual   string
}

// newMismatch builds a mismatch error from two concrete shapes.
func newMismatch(expRows, expCols, actRows, actCols int) *DimensionsMismatchError {
	return &DimensionsMismatchError{
		Expected: shapeString(expRows, expCols),
		Actual:   shapeString(actRows, actCols),
	}
}

// Error implements error.
func (e *DimensionsMismatchError) Error() string {
	return fmt.Sprintf("matrix: dimensions mismatch: expected %s, actual %s", e.Expected, e.Actual)
}

// Is reports ErrDimensionMismatch as the sentinel of every mismatch value.
func (e *DimensionsMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

func shapeString(rows, cols int) string {
	return fmt.Sprintf("%dx%d", rows, cols)
}
