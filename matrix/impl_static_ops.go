// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/mats/scalar"

// Add returns m + o.
func (m SMat[R, C, T]) Add(o SMat[R, C, T]) SMat[R, C, T] {
	m.AddAssign(o)

	return m
}

// Sub returns m - o.
func (m SMat[R, C, T]) Sub(o SMat[R, C, T]) SMat[R, C, T] {
	m.SubAssign(o)

	return m
}

// Scale returns k·m.
func (m SMat[R, C, T]) Scale(k T) SMat[R, C, T] {
	m.ScaleAssign(k)

	return m
}

// Div returns m / k elementwise. Integer division by zero panics as usual.
func (m SMat[R, C, T]) Div(k T) SMat[R, C, T] {
	m.DivAssign(k)

	return m
}

// Neg returns -m.
func (m SMat[R, C, T]) Neg() SMat[R, C, T] {
	n := m.Len()
	for i := 0; i < n; i++ {
		m.data[i] = -m.data[i]
	}

	return m
}

// AddAssign sets m = m + o.
func (m *SMat[R, C, T]) AddAssign(o SMat[R, C, T]) {
	n := m.Len()
	for i := 0; i < n; i++ {
		m.data[i] += o.data[i]
	}
}

// SubAssign sets m = m - o.
func (m *SMat[R, C, T]) SubAssign(o SMat[R, C, T]) {
	n := m.Len()
	for i := 0; i < n; i++ {
		m.data[i] -= o.data[i]
	}
}

// ScaleAssign sets m = k·m.
func (m *SMat[R, C, T]) ScaleAssign(k T) {
	n := m.Len()
	for i := 0; i < n; i++ {
		m.data[i] *= k
	}
}

// DivAssign sets m = m / k elementwise.
func (m *SMat[R, C, T]) DivAssign(k T) {
	n := m.Len()
	for i := 0; i < n; i++ {
		m.data[i] /= k
	}
}

// Dot returns the matrix product a·b, out[i][j] = Σ_k a[i][k]·b[k][j].
// The shared extent K is enforced by the type system.
//
// Complexity:
//   - Time O(R*K*C), Space O(1) (result is a value).
func Dot[R, K, C Dim, T Scalar](a SMat[R, K, T], b SMat[K, C, T]) SMat[R, C, T] {
	var out SMat[R, C, T]
	rows, inner, cols := dimOf[R](), dimOf[K](), dimOf[C]()
	var i, j, k int
	var sum T
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			sum = 0
			for k = 0; k < inner; k++ {
				sum += a.data[k*rows+i] * b.data[j*inner+k]
			}
			out.data[j*rows+i] = sum
		}
	}

	return out
}

// Transpose returns the C×R matrix with out[i][j] = m[j][i].
func (m SMat[R, C, T]) Transpose() SMat[C, R, T] {
	var out SMat[C, R, T]
	rows, cols := dimOf[R](), dimOf[C]()
	var i, j int
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			// (i,j) of m goes to (j,i) of out, whose column length is cols.
			out.data[i*cols+j] = m.data[j*rows+i]
		}
	}

	return out
}

// EqWithTolerance reports whether |m[i][j] - o[i][j]| <= eps for every cell.
// A NaN cell is never within tolerance.
func (m SMat[R, C, T]) EqWithTolerance(o SMat[R, C, T], eps T) bool {
	n := m.Len()
	for i := 0; i < n; i++ {
		if !(scalar.AbsDiff(m.data[i], o.data[i]) <= eps) {
			return false
		}
	}

	return true
}
