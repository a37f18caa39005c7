// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the DMat row/column primitives.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mats/matrix"
)

func TestSwapRowCol(t *testing.T) {
	m := MustRows(t, []int{1, 2, 3}, []int{4, 5, 6})

	require.NoError(t, m.SwapRow(0, 1))
	require.True(t, m.Equal(MustRows(t, []int{4, 5, 6}, []int{1, 2, 3})))

	require.NoError(t, m.SwapCol(0, 2))
	require.True(t, m.Equal(MustRows(t, []int{6, 5, 4}, []int{3, 2, 1})))

	require.NoError(t, m.SwapRow(1, 1)) // no-op
	require.NoError(t, m.SwapCol(2, 2))
	require.True(t, m.Equal(MustRows(t, []int{6, 5, 4}, []int{3, 2, 1})))
}

func TestSwapRowCol_OutOfRange(t *testing.T) {
	m := MustRows(t, []int{1, 2, 3}, []int{4, 5, 6})
	before := m.Clone()

	err := m.SwapRow(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.EqualError(t, err, "DMat.SwapRow(0,2): matrix: index out of range")

	err = m.SwapCol(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.EqualError(t, err, "DMat.SwapCol(-1,0): matrix: index out of range")

	require.True(t, m.Equal(before))
}

func TestGetRowCol(t *testing.T) {
	m := MustRows(t, []float64{1, 2, 3}, []float64{4, 5, 6})

	row, err := m.GetRow(1)
	require.NoError(t, err)
	require.Equal(t, 1, row.Rows())
	require.Equal(t, []float64{4, 5, 6}, row.Raw())

	col, err := m.GetCol(2)
	require.NoError(t, err)
	require.Equal(t, 1, col.Cols())
	require.Equal(t, []float64{3, 6}, col.Raw())

	// results are copies
	row.Set(0, 0, 100)
	require.Equal(t, 4.0, m.At(1, 0))

	_, err = m.GetRow(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.GetCol(3)
	require.EqualError(t, err, "DMat.GetCol(0,3): matrix: index out of range")
}

func TestSetRowCol(t *testing.T) {
	m := MustRows(t, []int{1, 2, 3}, []int{4, 5, 6})

	require.NoError(t, m.SetRow(0, MustRows(t, []int{7, 8, 9})))
	require.NoError(t, m.SetCol(1, MustCols(t, []int{0, 0})))
	require.True(t, m.Equal(MustRows(t, []int{7, 0, 9}, []int{4, 0, 6})))
}

func TestSetRowCol_Errors(t *testing.T) {
	m := MustRows(t, []int{1, 2, 3}, []int{4, 5, 6})
	before := m.Clone()

	tests := []struct {
		name     string
		err      error
		sentinel error
		msg      string
	}{
		{
			name:     "SetRow index",
			err:      m.SetRow(2, MustRows(t, []int{1, 1, 1})),
			sentinel: matrix.ErrOutOfRange,
			msg:      "DMat.SetRow(2,0): matrix: index out of range",
		},
		{
			name:     "SetRow shape",
			err:      m.SetRow(0, MustRows(t, []int{1, 1})),
			sentinel: matrix.ErrDimensionMismatch,
			msg:      "DMat.SetRow(0,0): matrix: dimensions mismatch: expected 1x3, actual 1x2",
		},
		{
			name:     "SetCol index",
			err:      m.SetCol(-1, MustCols(t, []int{1, 1})),
			sentinel: matrix.ErrOutOfRange,
			msg:      "DMat.SetCol(0,-1): matrix: index out of range",
		},
		{
			name:     "SetCol shape",
			err:      m.SetCol(1, MustRows(t, []int{1, 1})),
			sentinel: matrix.ErrDimensionMismatch,
			msg:      "DMat.SetCol(0,1): matrix: dimensions mismatch: expected 2x1, actual 1x2",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.err, tc.sentinel)
			require.EqualError(t, tc.err, tc.msg)
		})
	}
	require.True(t, m.Equal(before), "failed calls leave the receiver unchanged")
}
