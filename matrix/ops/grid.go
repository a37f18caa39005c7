// SPDX-License-Identifier: MIT

// Package ops provides the element-generic kernels behind matrix.SMat and
// matrix.DMat: LU, determinant, Gauss–Jordan inversion, forward elimination
// and rank, Householder QR, and the cycle-follower in-place transpose.
//
// Every kernel is written once against Grid and mutates the grids it is
// handed; callers own allocation (a fresh identity, a copy of the input) so
// that failing early never touches user data.
//
// Complexity quicksheet (n×n input):
//   - LU, GaussJordan, Eliminate: O(n³) time, O(1) extra space.
//   - QR: O(n³) time, O(n) extra space.
//   - TransposeInPlace: O(r*c) time, O(1) extra space.
package ops

import "github.com/katalvlaran/mats/scalar"

// Grid is the minimal read/write surface a kernel needs. Indices are
// zero-based; out-of-range access is a programming error of the caller.
type Grid[T scalar.Scalar] interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// At returns the element at (r, c).
	At(r, c int) T
	// Set stores v at (r, c).
	Set(r, c int, v T)
}

// swapRows exchanges rows i and j of g in place.
func swapRows[T scalar.Scalar](g Grid[T], i, j int) {
	if i == j {
		return
	}
	var k int
	var tmp T
	for k = 0; k < g.Cols(); k++ {
		tmp = g.At(i, k)
		g.Set(i, k, g.At(j, k))
		g.Set(j, k, tmp)
	}
}
