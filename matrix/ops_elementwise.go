// SPDX-License-Identifier: MIT
// Package matrix - DMat arithmetic: elementwise, scalar, product, transpose.
//
// Purpose:
//   - Checked forms (Add, Sub, AddAssign, SubAssign, Dot) return a
//     *DimensionsMismatchError wrapped with the operation tag; the Must* forms
//     panic with the same error.
//   - Scalar forms are always valid and never fail.
//   - Failing calls leave both operands untouched.
//
// Determinism:
//   - Elementwise kernels walk the flat buffer 0..n-1; the product uses a
//     fixed j→i→k order.

package matrix

import (
	"strconv"

	"github.com/katalvlaran/mats/matrix/ops"
)

// Add returns m + o as a fresh matrix.
//
// Errors:
//   - *DimensionsMismatchError (errors.Is ErrDimensionMismatch) on shape mismatch.
func (m *DMat[T]) Add(o *DMat[T]) (*DMat[T], error) {
	if err := validateSameShape(m, o); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out := m.Clone()
	for i := range out.data {
		out.data[i] += o.data[i]
	}

	return out, nil
}

// Sub returns m - o as a fresh matrix.
//
// Errors:
//   - *DimensionsMismatchError on shape mismatch.
func (m *DMat[T]) Sub(o *DMat[T]) (*DMat[T], error) {
	if err := validateSameShape(m, o); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	out := m.Clone()
	for i := range out.data {
		out.data[i] -= o.data[i]
	}

	return out, nil
}

// AddAssign sets m = m + o. m is unchanged on error.
func (m *DMat[T]) AddAssign(o *DMat[T]) error {
	if err := validateSameShape(m, o); err != nil {
		return matrixErrorf(opAdd, err)
	}
	for i := range m.data {
		m.data[i] += o.data[i]
	}

	return nil
}

// SubAssign sets m = m - o. m is unchanged on error.
func (m *DMat[T]) SubAssign(o *DMat[T]) error {
	if err := validateSameShape(m, o); err != nil {
		return matrixErrorf(opSub, err)
	}
	for i := range m.data {
		m.data[i] -= o.data[i]
	}

	return nil
}

// MustAdd is Add that panics on shape mismatch.
func (m *DMat[T]) MustAdd(o *DMat[T]) *DMat[T] {
	out, err := m.Add(o)
	if err != nil {
		panic(err)
	}

	return out
}

// MustSub is Sub that panics on shape mismatch.
func (m *DMat[T]) MustSub(o *DMat[T]) *DMat[T] {
	out, err := m.Sub(o)
	if err != nil {
		panic(err)
	}

	return out
}

// MustAddAssign is AddAssign that panics on shape mismatch.
func (m *DMat[T]) MustAddAssign(o *DMat[T]) {
	if err := m.AddAssign(o); err != nil {
		panic(err)
	}
}

// MustSubAssign is SubAssign that panics on shape mismatch.
func (m *DMat[T]) MustSubAssign(o *DMat[T]) {
	if err := m.SubAssign(o); err != nil {
		panic(err)
	}
}

// Scale returns k·m.
func (m *DMat[T]) Scale(k T) *DMat[T] {
	out := m.Clone()
	out.ScaleAssign(k)

	return out
}

// Div returns m / k elementwise.
func (m *DMat[T]) Div(k T) *DMat[T] {
	out := m.Clone()
	out.DivAssign(k)

	return out
}

// Neg returns -m.
func (m *DMat[T]) Neg() *DMat[T] {
	out := m.Clone()
	out.NegAssign()

	return out
}

// ScaleAssign sets m = k·m.
func (m *DMat[T]) ScaleAssign(k T) {
	for i := range m.data {
		m.data[i] *= k
	}
}

// DivAssign sets m = m / k elementwise.
func (m *DMat[T]) DivAssign(k T) {
	for i := range m.data {
		m.data[i] /= k
	}
}

// NegAssign sets m = -m.
func (m *DMat[T]) NegAssign() {
	for i := range m.data {
		m.data[i] = -m.data[i]
	}
}

// Dot returns the product m·o (m.rows × o.cols).
// MAIN DESCRIPTION:
//   - Standard triple loop, out[i][j] = Σ_k m[i][k]·o[k][j].
//
// Errors:
//   - *DimensionsMismatchError with Expected "<m.cols>xN" and Actual
//     "<o.rows>x_" when m.cols != o.rows.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func (m *DMat[T]) Dot(o *DMat[T]) (*DMat[T], error) {
	if m.cols != o.rows {
		return nil, matrixErrorf(opDot, &DimensionsMismatchError{
			Expected: strconv.Itoa(m.cols) + "xN",
			Actual:   strconv.Itoa(o.rows) + "x_",
		})
	}
	out := newUninit[T](m.rows, o.cols)
	var i, j, k int
	var sum T
	for j = 0; j < o.cols; j++ {
		for i = 0; i < m.rows; i++ {
			sum = 0
			for k = 0; k < m.cols; k++ {
				sum += m.data[k*m.rows+i] * o.data[j*o.rows+k]
			}
			out.data[j*m.rows+i] = sum
		}
	}

	return out, nil
}

// MustDot is Dot that panics on shape mismatch.
func (m *DMat[T]) MustDot(o *DMat[T]) *DMat[T] {
	out, err := m.Dot(o)
	if err != nil {
		panic(err)
	}

	return out
}

// Transpose returns a fresh cols×rows matrix with out[c][r] = m[r][c].
func (m *DMat[T]) Transpose() *DMat[T] {
	out := newUninit[T](m.cols, m.rows)
	var i, j int
	for j = 0; j < m.cols; j++ {
		for i = 0; i < m.rows; i++ {
			out.data[i*m.cols+j] = m.data[j*m.rows+i]
		}
	}

	return out
}

// TransposeInPlace transposes m without a second buffer (cycle-follower
// permutation, see ops.TransposeInPlace) and swaps its dimensions.
// Applying it twice restores m bit for bit.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *DMat[T]) TransposeInPlace() {
	ops.TransposeInPlace(m.data, m.rows, m.cols)
	m.rows, m.cols = m.cols, m.rows
}
