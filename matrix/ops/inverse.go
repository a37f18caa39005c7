// SPDX-License-Identifier: MIT

package ops

import "github.com/katalvlaran/mats/scalar"

// SingularThreshold is the absolute pivot magnitude at or below which
// GaussJordan reports a matrix as not invertible.
const SingularThreshold = 1e-10

// GaussJordan reduces w to the identity while applying the same row
// operations to e. On entry w is a copy of A and e the identity; when it
// returns true, e holds A⁻¹.
//
// Implementation:
//   - For each pivot i: stop with false when |W[i,i]| <= SingularThreshold.
//   - Divide row i of W and E by the pivot.
//   - For every other row j, subtract W[j,i]·(row i) from row j in W and E.
//
// Behavior highlights:
//   - No row pivoting: a zero on the diagonal at step i is reported as
//     singular even if a later row could have supplied a pivot.
//   - On false both grids are left partially reduced; callers pass copies.
//
// Complexity:
//   - Time O(n³), Space O(1).
func GaussJordan[T scalar.Float](w, e Grid[T]) bool {
	n := w.Rows()
	eps := T(SingularThreshold)
	var i, j, k int
	var pivot, f T
	for i = 0; i < n; i++ {
		pivot = w.At(i, i)
		if scalar.Abs(pivot) <= eps {
			return false
		}
		for k = 0; k < n; k++ {
			w.Set(i, k, w.At(i, k)/pivot)
			e.Set(i, k, e.At(i, k)/pivot)
		}
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			f = w.At(j, i)
			for k = 0; k < n; k++ {
				w.Set(j, k, w.At(j, k)-f*w.At(i, k))
				e.Set(j, k, e.At(j, k)-f*e.At(i, k))
			}
		}
	}

	return true
}
