// SPDX-License-Identifier: MIT

package ops

// TransposeInPlace rewrites the column-major rows×cols buffer data into the
// column-major layout of its cols×rows transpose, without a second buffer.
//
// MAIN DESCRIPTION:
//   - Element at index i (row i mod rows, column i / rows) must land at
//     σ(i) = (i mod rows)·cols + i/rows. σ is a permutation of [0, rows·cols)
//     and is applied by walking its cycles.
//   - A cycle is rotated once, from its smallest index (the leader). Index i
//     is a leader when following σ from i never visits a smaller index
//     before returning to i.
//   - Rotation pulls each slot's value from its preimage
//     σ⁻¹(k) = (k mod cols)·rows + k/cols with pairwise swaps.
//
// Complexity:
//   - Time O(rows·cols) for the moves plus the leader scans, Space O(1).
//
// The caller swaps its own rows/cols fields afterwards. Applying the function
// twice with swapped dimensions restores the original buffer bit for bit.
func TransposeInPlace[T any](data []T, rows, cols int) {
	n := rows * cols
	if n < 3 || rows == 1 || cols == 1 {
		// a single row or column has the same buffer in both layouts
		return
	}
	forward := func(i int) int { return (i%rows)*cols + i/rows }
	backward := func(k int) int { return (k%cols)*rows + k/cols }

	var i, next, cur, before int
	// 0 and n-1 are fixed points of σ.
	for i = 1; i < n-1; i++ {
		next = forward(i)
		for next > i {
			next = forward(next)
		}
		if next != i {
			continue
		}
		cur = i
		before = backward(cur)
		for before != i {
			data[cur], data[before] = data[before], data[cur]
			cur = before
			before = backward(cur)
		}
	}
}
