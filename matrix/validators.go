// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for DMat shape and index checks.
//  - Keep operations minimal by delegating shape/index checks here.
//  - Return plain sentinels or *DimensionsMismatchError (no wrapping) so call
//    sites can wrap uniformly with their own method context.
//
// Determinism & Performance:
//  - All checks are pure, O(1), and allocate only on failure.

package matrix

// validateDims ensures rows > 0 and cols > 0.
func validateDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}

	return nil
}

// validateSameShape ensures a and b have equal dimensions; the mismatch
// reports a's shape as expected and b's as actual.
func validateSameShape[T Scalar](a, b *DMat[T]) error {
	if a.rows != b.rows || a.cols != b.cols {
		return newMismatch(a.rows, a.cols, b.rows, b.cols)
	}

	return nil
}

// validateSquare ensures rows == cols.
func validateSquare[T Scalar](m *DMat[T]) error {
	if m.rows != m.cols {
		return ErrNonSquare
	}

	return nil
}

// validateRow ensures 0 <= i < rows.
func validateRow[T Scalar](m *DMat[T], i int) error {
	if i < 0 || i >= m.rows {
		return ErrOutOfRange
	}

	return nil
}

// validateCol ensures 0 <= j < cols.
func validateCol[T Scalar](m *DMat[T], j int) error {
	if j < 0 || j >= m.cols {
		return ErrOutOfRange
	}

	return nil
}
