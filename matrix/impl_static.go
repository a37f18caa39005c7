// SPDX-License-Identifier: MIT

// Package matrix - SMat: compile-time sized, column-major, value semantics.
//
// Purpose:
//   - Carry the shape in the type (R, C are Dim markers) so products,
//     transposes and square-only routines are shape-checked by the compiler.
//   - Keep the value on the stack: a fixed inline buffer, copied on assignment.
//   - Use the one index formula of the package: (row, col) lives at col*R + row.
//
// Invariants:
//   - Only the first R*C cells of data are used; the rest stay zero, so two
//     SMat values of one type compare equal with == iff every element does.
//
// Complexity quicksheet:
//   - At/Set: O(1); Add/Sub/Scale/Div/Neg: O(R*C); Dot: O(R*K*C).
package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxSwapRow = "SwapRow"
	ctxSwapCol = "SwapCol"
	ctxRow     = "Row"
	ctxCol     = "Col"
	ctxGetRow  = "GetRow"
	ctxGetCol  = "GetCol"
	ctxSetRow  = "SetRow"
	ctxSetCol  = "SetCol"
)

const (
	panicColumnCount = "matrix: New: want %d columns, got %d"
	panicColumnLen   = "matrix: New: column %d: want %d elements, got %d"
	panicDataLen     = "matrix: FromData: want %d elements, got %d"
)

// smatErrorf wraps err with SMat method context and coordinates; SMat
// methods panic with the result.
func smatErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("SMat.%s(%d,%d): %w", method, row, col, err)
}

// SMat is an R×C matrix of T whose extents are fixed at compile time.
// The zero value is the all-zero matrix.
type SMat[R, C Dim, T Scalar] struct {
	data [maxDim * maxDim]T
}

// New builds an SMat from C columns of R elements each.
// A wrong column count or length is a programming error and panics.
//
//	m := matrix.New[matrix.D3, matrix.D2, float32](
//		[]float32{1, 3, -4}, // column 0
//		[]float32{-2, 0, 5}, // column 1
//	)
func New[R, C Dim, T Scalar](cols ...[]T) SMat[R, C, T] {
	rows, ncols := dimOf[R](), dimOf[C]()
	if len(cols) != ncols {
		panic(fmt.Sprintf(panicColumnCount, ncols, len(cols)))
	}
	var m SMat[R, C, T]
	var j int
	for j = 0; j < ncols; j++ {
		if len(cols[j]) != rows {
			panic(fmt.Sprintf(panicColumnLen, j, rows, len(cols[j])))
		}
		copy(m.data[j*rows:(j+1)*rows], cols[j])
	}

	return m
}

// FromData builds an SMat from R*C elements already in column-major order.
// A wrong length panics.
func FromData[R, C Dim, T Scalar](data []T) SMat[R, C, T] {
	n := dimOf[R]() * dimOf[C]()
	if len(data) != n {
		panic(fmt.Sprintf(panicDataLen, n, len(data)))
	}
	var m SMat[R, C, T]
	copy(m.data[:n], data)

	return m
}

// Filled returns an SMat with every entry equal to v.
func Filled[R, C Dim, T Scalar](v T) SMat[R, C, T] {
	var m SMat[R, C, T]
	m.Fill(v)

	return m
}

// Identity returns the N×N identity.
func Identity[N Dim, T Scalar]() SMat[N, N, T] {
	var m SMat[N, N, T]
	n := dimOf[N]()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m
}

// Zero returns the N×N additive identity (all entries zero).
func Zero[N Dim, T Scalar]() SMat[N, N, T] { return SMat[N, N, T]{} }

// One returns the N×N multiplicative identity; it is Identity.
func One[N Dim, T Scalar]() SMat[N, N, T] { return Identity[N, T]() }

// Rows returns R.
func (m SMat[R, C, T]) Rows() int { return dimOf[R]() }

// Cols returns C.
func (m SMat[R, C, T]) Cols() int { return dimOf[C]() }

// Shape returns (R, C).
func (m SMat[R, C, T]) Shape() (rows, cols int) { return dimOf[R](), dimOf[C]() }

// Len returns R*C.
func (m SMat[R, C, T]) Len() int { return dimOf[R]() * dimOf[C]() }

// offset bounds-checks (row, col) and returns col*R + row.
// It panics with ErrOutOfRange wrapped in method context.
func (m *SMat[R, C, T]) offset(method string, row, col int) int {
	rows, cols := dimOf[R](), dimOf[C]()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		panic(smatErrorf(method, row, col, ErrOutOfRange))
	}

	return col*rows + row
}

// At returns the element at (row, col). Out-of-range indices panic.
func (m SMat[R, C, T]) At(row, col int) T {
	return m.data[m.offset(ctxAt, row, col)]
}

// Set stores v at (row, col). Out-of-range indices panic.
func (m *SMat[R, C, T]) Set(row, col int, v T) {
	m.data[m.offset(ctxSet, row, col)] = v
}

// Raw returns the live column-major storage (length R*C); writes through it
// modify m.
func (m *SMat[R, C, T]) Raw() []T {
	return m.data[:m.Len()]
}

// Fill overwrites every entry with v.
func (m *SMat[R, C, T]) Fill(v T) {
	n := m.Len()
	for i := 0; i < n; i++ {
		m.data[i] = v
	}
}

// Row returns row i as a 1×C matrix. Out-of-range i panics.
func (m SMat[R, C, T]) Row(i int) SMat[D1, C, T] {
	var out SMat[D1, C, T]
	rows, cols := dimOf[R](), dimOf[C]()
	if i < 0 || i >= rows {
		panic(smatErrorf(ctxRow, i, 0, ErrOutOfRange))
	}
	for j := 0; j < cols; j++ {
		out.data[j] = m.data[j*rows+i]
	}

	return out
}

// Col returns column j as an R×1 vector. Out-of-range j panics.
func (m SMat[R, C, T]) Col(j int) SMat[R, D1, T] {
	var out SMat[R, D1, T]
	rows, cols := dimOf[R](), dimOf[C]()
	if j < 0 || j >= cols {
		panic(smatErrorf(ctxCol, 0, j, ErrOutOfRange))
	}
	copy(out.data[:rows], m.data[j*rows:(j+1)*rows])

	return out
}

// SwapRows exchanges rows i and j in place. Out-of-range indices panic.
func (m *SMat[R, C, T]) SwapRows(i, j int) {
	rows, cols := dimOf[R](), dimOf[C]()
	if i < 0 || i >= rows || j < 0 || j >= rows {
		panic(smatErrorf(ctxSwapRow, i, j, ErrOutOfRange))
	}
	for c := 0; c < cols; c++ {
		m.data[c*rows+i], m.data[c*rows+j] = m.data[c*rows+j], m.data[c*rows+i]
	}
}

// SwapCols exchanges columns i and j in place. Out-of-range indices panic.
func (m *SMat[R, C, T]) SwapCols(i, j int) {
	rows, cols := dimOf[R](), dimOf[C]()
	if i < 0 || i >= cols || j < 0 || j >= cols {
		panic(smatErrorf(ctxSwapCol, i, j, ErrOutOfRange))
	}
	for r := 0; r < rows; r++ {
		m.data[i*rows+r], m.data[j*rows+r] = m.data[j*rows+r], m.data[i*rows+r]
	}
}
