// SPDX-License-Identifier: MIT

package ops

import "github.com/katalvlaran/mats/scalar"

// QR factorises the matrix held in r into q·r in place using Householder
// reflections.
// On entry q must be the m×m identity and r a copy of the m×n input A; on
// return q is orthogonal and r is upper-triangular (upper-trapezoidal when
// m != n) with q·r = A.
//
// Implementation:
//   - Stage 1: for column k, v = A[k:,k] - α·e_k with α = -sign(A[k,k])·‖A[k:,k]‖;
//     zero columns are skipped.
//   - Stage 2: r ← H·r and q ← q·H with H = I - (2/vᵀv)·v·vᵀ; the entries
//     below r[k,k] are set to exact zeros.
//
// Complexity:
//   - Time O(m²·n), Space O(m) for the reflector.
func QR[T scalar.Float](q, r Grid[T]) {
	m, n := r.Rows(), r.Cols()
	steps := min(n, m-1)
	v := make([]T, m)

	var i, j, k int
	var norm, alpha, beta, s T
	for k = 0; k < steps; k++ {
		norm = 0
		for i = k; i < m; i++ {
			norm += r.At(i, k) * r.At(i, k)
		}
		norm = scalar.Sqrt(norm)
		if norm == 0 {
			continue
		}
		alpha = -norm
		if r.At(k, k) < 0 {
			alpha = norm
		}

		clear(v)
		for i = k; i < m; i++ {
			v[i] = r.At(i, k)
		}
		v[k] -= alpha
		beta = 0
		for i = k; i < m; i++ {
			beta += v[i] * v[i]
		}

		for j = k; j < n; j++ {
			s = 0
			for i = k; i < m; i++ {
				s += v[i] * r.At(i, j)
			}
			s = 2 * s / beta
			for i = k; i < m; i++ {
				r.Set(i, j, r.At(i, j)-s*v[i])
			}
		}
		for i = k + 1; i < m; i++ {
			r.Set(i, k, 0)
		}

		for i = 0; i < m; i++ {
			s = 0
			for j = k; j < m; j++ {
				s += q.At(i, j) * v[j]
			}
			s = 2 * s / beta
			for j = k; j < m; j++ {
				q.Set(i, j, q.At(i, j)-s*v[j])
			}
		}
	}
}
