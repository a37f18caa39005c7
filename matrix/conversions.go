// SPDX-License-Identifier: MIT

package matrix

// DMatFromSMat copies a static matrix into a new DMat of the same shape.
// It never fails.
func DMatFromSMat[R, C Dim, T Scalar](m SMat[R, C, T]) *DMat[T] {
	out := newUninit[T](m.Shape())
	copy(out.data, m.data[:m.Len()])

	return out
}

// ToSMat copies d into an SMat[R, C, T].
//
// Errors:
//   - *DimensionsMismatchError{Expected: "RxC", Actual: "<rows>x<cols>"} when
//     the runtime shape differs from the static one.
func ToSMat[R, C Dim, T Scalar](d *DMat[T]) (SMat[R, C, T], error) {
	var out SMat[R, C, T]
	rows, cols := out.Shape()
	if d.rows != rows || d.cols != cols {
		return out, matrixErrorf(opToSMat, newMismatch(rows, cols, d.rows, d.cols))
	}
	copy(out.data[:], d.data)

	return out, nil
}

// Columns returns the columns of m as fresh slices, the inverse of New.
func (m SMat[R, C, T]) Columns() [][]T {
	rows, cols := m.Shape()
	out := make([][]T, cols)
	for j := range out {
		out[j] = append([]T(nil), m.data[j*rows:(j+1)*rows]...)
	}

	return out
}

// Columns returns the columns of m as fresh slices, the inverse of NewDMat.
func (m *DMat[T]) Columns() [][]T {
	out := make([][]T, m.cols)
	for j := range out {
		out[j] = append([]T(nil), m.data[j*m.rows:(j+1)*m.rows]...)
	}

	return out
}
