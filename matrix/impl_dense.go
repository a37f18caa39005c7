// SPDX-License-Identifier: MIT

// Package matrix - DMat storage (column-major) & accessors.
//
// Purpose:
//   - Provide a runtime-sized matrix with the same layout contract as SMat:
//     (row, col) lives at col*rows + row in one contiguous buffer.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Split failure modes: checked methods return errors, indexers panic.
//
// Invariants:
//   - len(data) == rows*cols and rows, cols >= 1 for every DMat a caller sees.
//
// Complexity quicksheet:
//   - NewDMat/FillDMat/IdentityDMat: O(r*c); Get/At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/mats/scalar"
)

// denseErrorf wraps an error with a uniform DMat context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "DMat.<method>(row,col): %w".
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves the sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("DMat.%s(%d,%d): %w", method, row, col, err)
}

// DMat is a runtime-sized matrix in column-major order. Use it through *DMat.
//   - rows, cols hold dimensions.
//   - data is a flat buffer of length rows*cols (offset = col*rows + row).
type DMat[T Scalar] struct {
	rows, cols int
	data       []T
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*DMat[float64])(nil)

// NewDMat builds a DMat from columns: cols[j] is column j and every column must
// have the same, non-zero, length.
// MAIN DESCRIPTION:
//   - Column-major nested input, the same interpretation as New for SMat.
//
// Implementation:
//   - Stage 1: reject empty input (ErrInvalidDimensions).
//   - Stage 2: reject ragged columns (ErrBadShape) before allocating.
//   - Stage 3: copy columns back to back into one buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape (wrapped with "NewDMat").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDMat[T Scalar](cols ...[]T) (*DMat[T], error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, matrixErrorf(opNewDMat, ErrInvalidDimensions)
	}
	rows := len(cols[0])
	for j := range cols {
		if len(cols[j]) != rows {
			return nil, fmt.Errorf("%s: column %d has %d elements, want %d: %w",
				opNewDMat, j, len(cols[j]), rows, ErrBadShape)
		}
	}
	m := newUninit[T](rows, len(cols))
	for j := range cols {
		copy(m.data[j*rows:], cols[j])
	}

	return m, nil
}

// DMatFromRows builds a DMat from rows: rows[i] is row i. This is the natural
// reading order of a matrix literal and the transpose of NewDMat's input.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape (wrapped with "DMatFromRows").
func DMatFromRows[T Scalar](rows ...[]T) (*DMat[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for i := range rows {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("%s: row %d has %d elements, want %d: %w",
				opFromRows, i, len(rows[i]), cols, ErrBadShape)
		}
	}
	m := newUninit[T](len(rows), cols)
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < cols; j++ {
			m.data[j*m.rows+i] = rows[i][j]
		}
	}

	return m, nil
}

// FillDMat returns a rows×cols matrix with every entry v.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
func FillDMat[T Scalar](rows, cols int, v T) (*DMat[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opFill, err)
	}
	m := newUninit[T](rows, cols)
	m.Fill(v)

	return m, nil
}

// IdentityDMat returns the n×n identity.
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
func IdentityDMat[T Scalar](n int) (*DMat[T], error) {
	if err := validateDims(n, n); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return identityUnchecked[T](n), nil
}

// newUninit allocates a rows×cols DMat for internal producers that write
// every cell before the value escapes. Dimensions are not validated.
// Go zero-fills the buffer, so "uninitialised" reads as zero.
func newUninit[T Scalar](rows, cols int) *DMat[T] {
	return &DMat[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

func identityUnchecked[T Scalar](n int) *DMat[T] {
	m := newUninit[T](n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = scalar.One[T]()
	}

	return m
}

// Rows returns the row count. Complexity: O(1).
func (m *DMat[T]) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *DMat[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *DMat[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// Len returns rows*cols.
func (m *DMat[T]) Len() int { return len(m.data) }

// IsSquare reports whether rows == cols.
func (m *DMat[T]) IsSquare() bool { return m.rows == m.cols }

// Raw returns the live column-major buffer; writes through it modify m.
func (m *DMat[T]) Raw() []T { return m.data }

// indexOf computes the column-major offset or returns ErrOutOfRange.
func (m *DMat[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.cols {
		return 0, ErrOutOfRange
	}

	return col*m.rows + row, nil
}

// Get returns the element at (row, col) and true, or the zero value and false
// when the indices are out of range.
func (m *DMat[T]) Get(row, col int) (T, bool) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, false
	}

	return m.data[off], true
}

// At returns the element at (row, col). Out-of-range indices panic with
// ErrOutOfRange wrapped in method context.
func (m *DMat[T]) At(row, col int) T {
	off, err := m.indexOf(row, col)
	if err != nil {
		panic(denseErrorf(ctxAt, row, col, err))
	}

	return m.data[off]
}

// Set stores v at (row, col). Out-of-range indices panic.
func (m *DMat[T]) Set(row, col int, v T) {
	off, err := m.indexOf(row, col)
	if err != nil {
		panic(denseErrorf(ctxSet, row, col, err))
	}
	m.data[off] = v
}

// Fill overwrites every entry with v.
func (m *DMat[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Clone returns a deep copy.
// Complexity: O(r*c).
func (m *DMat[T]) Clone() *DMat[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &DMat[T]{rows: m.rows, cols: m.cols, data: cp}
}

// Equal reports whether m and o have the same shape and equal elements.
func (m *DMat[T]) Equal(o *DMat[T]) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// EqWithTolerance reports whether m and o have the same shape and
// |m[i][j] - o[i][j]| <= eps for every cell.
func (m *DMat[T]) EqWithTolerance(o *DMat[T], eps T) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.data {
		if !(scalar.AbsDiff(m.data[i], o.data[i]) <= eps) {
			return false
		}
	}

	return true
}
