// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mats/matrix"
)

// TestDefaultOptions_Documented verifies that no options resolve to the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	w, p := matrix.ResolvedOptions()
	if w != matrix.DefaultCellWidth {
		t.Fatalf("cellWidth default mismatch: got %d, want %d", w, matrix.DefaultCellWidth)
	}
	if p != matrix.DefaultPrecision {
		t.Fatalf("precision default mismatch: got %d, want %d", p, matrix.DefaultPrecision)
	}
}

func TestOptions_Apply(t *testing.T) {
	w, p := matrix.ResolvedOptions(matrix.WithCellWidth(3), nil, matrix.WithPrecision(2))
	require.Equal(t, 3, w)
	require.Equal(t, 2, p)

	// last writer wins
	w, _ = matrix.ResolvedOptions(matrix.WithCellWidth(3), matrix.WithCellWidth(0))
	require.Equal(t, 0, w)
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	require.PanicsWithValue(t, "matrix: WithCellWidth: width must be >= 0", func() { matrix.WithCellWidth(-1) })
	require.PanicsWithValue(t, "matrix: WithPrecision: precision must be >= 0", func() { matrix.WithPrecision(-3) })
}

func TestNewUninit_ZeroFilled(t *testing.T) {
	m := matrix.NewUninit[int32](2, 3)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, make([]int32, 6), m.Raw())
}
