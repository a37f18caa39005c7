// SPDX-License-Identifier: MIT

// Package matrix - DMat row/column primitives.
//
// All primitives validate before touching data: an error means the receiver
// is unchanged. Index failures wrap ErrOutOfRange with "DMat.<method>(i,j)";
// shape failures are *DimensionsMismatchError.
package matrix

// SwapRow exchanges rows i and j in place.
//
// Errors:
//   - ErrOutOfRange when i or j is not a row index.
func (m *DMat[T]) SwapRow(i, j int) error {
	if validateRow(m, i) != nil || validateRow(m, j) != nil {
		return denseErrorf(ctxSwapRow, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	for c := 0; c < m.cols; c++ {
		m.data[c*m.rows+i], m.data[c*m.rows+j] = m.data[c*m.rows+j], m.data[c*m.rows+i]
	}

	return nil
}

// SwapCol exchanges columns i and j in place.
//
// Errors:
//   - ErrOutOfRange when i or j is not a column index.
func (m *DMat[T]) SwapCol(i, j int) error {
	if validateCol(m, i) != nil || validateCol(m, j) != nil {
		return denseErrorf(ctxSwapCol, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	a, b := m.data[i*m.rows:(i+1)*m.rows], m.data[j*m.rows:(j+1)*m.rows]
	for r := range a {
		a[r], b[r] = b[r], a[r]
	}

	return nil
}

// GetRow returns row i as a fresh 1×cols matrix.
func (m *DMat[T]) GetRow(i int) (*DMat[T], error) {
	if err := validateRow(m, i); err != nil {
		return nil, denseErrorf(ctxGetRow, i, 0, err)
	}
	out := newUninit[T](1, m.cols)
	for c := 0; c < m.cols; c++ {
		out.data[c] = m.data[c*m.rows+i]
	}

	return out, nil
}

// GetCol returns column j as a fresh rows×1 matrix.
func (m *DMat[T]) GetCol(j int) (*DMat[T], error) {
	if err := validateCol(m, j); err != nil {
		return nil, denseErrorf(ctxGetCol, 0, j, err)
	}
	out := newUninit[T](m.rows, 1)
	copy(out.data, m.data[j*m.rows:(j+1)*m.rows])

	return out, nil
}

// SetRow overwrites row i with row, which must be 1×cols.
//
// Errors:
//   - ErrOutOfRange for a bad index.
//   - *DimensionsMismatchError (expected "1x<cols>") for a bad shape.
func (m *DMat[T]) SetRow(i int, row *DMat[T]) error {
	if err := validateRow(m, i); err != nil {
		return denseErrorf(ctxSetRow, i, 0, err)
	}
	if row.rows != 1 || row.cols != m.cols {
		return denseErrorf(ctxSetRow, i, 0, newMismatch(1, m.cols, row.rows, row.cols))
	}
	for c := 0; c < m.cols; c++ {
		m.data[c*m.rows+i] = row.data[c]
	}

	return nil
}

// SetCol overwrites column j with col, which must be rows×1.
//
// Errors:
//   - ErrOutOfRange for a bad index.
//   - *DimensionsMismatchError (expected "<rows>x1") for a bad shape.
func (m *DMat[T]) SetCol(j int, col *DMat[T]) error {
	if err := validateCol(m, j); err != nil {
		return denseErrorf(ctxSetCol, 0, j, err)
	}
	if col.rows != m.rows || col.cols != 1 {
		return denseErrorf(ctxSetCol, 0, j, newMismatch(m.rows, 1, col.rows, col.cols))
	}
	copy(m.data[j*m.rows:(j+1)*m.rows], col.data)

	return nil
}
