// SPDX-License-Identifier: MIT

package ops

import "github.com/katalvlaran/mats/scalar"

// Eliminate runs the forward phase of Gaussian elimination on w in place:
// for i in [0, min(rows,cols)), when W[i,i] != 0 every row below gets
// W[j,i]/W[i,i] times row i subtracted. Zero pivots are skipped, no swaps.
// Complexity: O(min(r,c)·r·c).
func Eliminate[T scalar.Scalar](w Grid[T]) {
	rows, cols := w.Rows(), w.Cols()
	steps := min(rows, cols)
	var i, j, k int
	var pivot, f T
	for i = 0; i < steps; i++ {
		pivot = w.At(i, i)
		if pivot == 0 {
			continue
		}
		for j = i + 1; j < rows; j++ {
			f = w.At(j, i) / pivot
			for k = 0; k < cols; k++ {
				w.Set(j, k, w.At(j, k)-f*w.At(i, k))
			}
		}
	}
}

// CountNonZeroRows returns how many rows of w hold at least one element
// whose magnitude exceeds tol. tol == 0 means exact comparison with zero.
// NaN always counts as nonzero.
func CountNonZeroRows[T scalar.Scalar](w Grid[T], tol T) int {
	var count, i, j int
	for i = 0; i < w.Rows(); i++ {
		for j = 0; j < w.Cols(); j++ {
			if exceeds(w.At(i, j), tol) {
				count++
				break
			}
		}
	}

	return count
}

// exceeds reports |x| > tol without negating x, so the most negative
// integer of T is not lost to wrap-around.
func exceeds[T scalar.Scalar](x, tol T) bool {
	switch {
	case x != x: // NaN
		return true
	case x < 0:
		return x < -tol
	default:
		return x > tol
	}
}

// Rank eliminates w in place and counts rows with any nonzero element.
// Zero means exactly the zero value of T; floating-point round-off that
// leaves a tiny residue counts as nonzero.
func Rank[T scalar.Scalar](w Grid[T]) int {
	Eliminate(w)

	return CountNonZeroRows(w, 0)
}

// RankWithTolerance is Rank with |x| <= tol treated as zero when counting.
func RankWithTolerance[T scalar.Scalar](w Grid[T], tol T) int {
	Eliminate(w)

	return CountNonZeroRows(w, tol)
}
