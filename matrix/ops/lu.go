// SPDX-License-Identifier: MIT

package ops

import "github.com/katalvlaran/mats/scalar"

// LU factorises the square matrix held in u into l·u in place.
// On entry l must be the identity and u a copy of A (both n×n); on return l is
// unit-lower-triangular and u upper-triangular.
//
// Implementation:
//   - Stage 1: for each pivot i, if U[i,i] is zero swap row i with row n-1 of U
//     (one deterministic swap; L is not permuted).
//   - Stage 2: for rows j>i, m = U[j,i]/U[i,i] (0 when the pivot is still zero),
//     L[j,i] = m, U[j,k] -= m·U[i,k] for k in [i,n).
//
// Behavior highlights:
//   - The single swap with the last row is a best-effort pivot; it may leave a
//     zero on the diagonal, in which case the column is skipped (multiplier 0).
//   - When a swap happened, l·u reproduces the row-permuted input.
//
// Complexity:
//   - Time O(n³), Space O(1).
func LU[T scalar.Scalar](l, u Grid[T]) {
	n := u.Rows()
	var i, j, k int
	var m, pivot T
	for i = 0; i < n; i++ {
		if u.At(i, i) == 0 {
			swapRows(u, i, n-1)
		}
		pivot = u.At(i, i)
		for j = i + 1; j < n; j++ {
			m = 0
			if pivot != 0 {
				m = u.At(j, i) / pivot
			}
			l.Set(j, i, m)
			for k = i; k < n; k++ {
				u.Set(j, k, u.At(j, k)-m*u.At(i, k))
			}
		}
	}
}

// Det returns Π L[i,i]·U[i,i] over the diagonal of an LU pair.
// Complexity: O(n).
func Det[T scalar.Scalar](l, u Grid[T]) T {
	det := T(1)
	for i := 0; i < u.Rows(); i++ {
		det = det * l.At(i, i) * u.At(i, i)
	}

	return det
}
