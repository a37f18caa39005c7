// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for LU, determinant, inverse and
// rank on both carriers, with gonum as an independent oracle.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mats/matrix"
)

// diagDominant returns a seeded n×n matrix with |a_ii| > Σ|a_ij|, so no
// pivot of LU or Gauss–Jordan is ever zero.
func diagDominant(t *testing.T, n int, seed int64) *matrix.DMat[float64] {
	t.Helper()
	m := RandomDMat(t, n, n, seed)
	for i := 0; i < n; i++ {
		m.Set(i, i, m.At(i, i)+float64(n))
	}

	return m
}

// TestLU_RankDeficient: the 1…9 matrix factors into L with multipliers 4, 7, 2
// and U with diagonal (1, -3, 0); det is 0.
func TestLU_RankDeficient(t *testing.T) {
	a := matrix.New[matrix.D3, matrix.D3, float32](
		[]float32{1, 4, 7},
		[]float32{2, 5, 8},
		[]float32{3, 6, 9},
	)
	l, u := matrix.LU(a)

	wantL := matrix.Mat3FromArray([3][3]float32{{1, 4, 7}, {0, 1, 2}, {0, 0, 1}})
	require.Equal(t, wantL, l)
	require.Equal(t, float32(1), u.At(0, 0))
	require.Equal(t, float32(-3), u.At(1, 1))
	require.Equal(t, float32(0), u.At(2, 2))
	require.Equal(t, float32(0), matrix.Det(a))
	require.Equal(t, a, matrix.Dot(l, u))

	// the same input through DMat
	d := matrix.DMatFromSMat(a)
	dl, du, err := d.LU()
	require.NoError(t, err)
	require.True(t, dl.Equal(matrix.DMatFromSMat(l)))
	require.True(t, du.Equal(matrix.DMatFromSMat(u)))
	det, err := d.Det()
	require.NoError(t, err)
	require.Equal(t, float32(0), det)
}

// TestLU_ZeroPivotSwap: a zero leading pivot is swapped with the last row and
// L·U reproduces the row-permuted input.
func TestLU_ZeroPivotSwap(t *testing.T) {
	a := MustRows(t, []int{0, 1}, []int{1, 1})
	l, u, err := a.LU()
	require.NoError(t, err)
	RequireLowerUnit(t, l)
	RequireUpper(t, u, 0)

	permuted := MustRows(t, []int{1, 1}, []int{0, 1})
	require.True(t, l.MustDot(u).Equal(permuted))
	require.Equal(t, []int{0, 1, 1, 1}, a.Raw(), "input untouched")
}

func TestLU_Random(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 8} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := diagDominant(t, n, int64(n))
			l, u, err := a.LU()
			require.NoError(t, err)
			RequireLowerUnit(t, l)
			RequireUpper(t, u, 1e-12)
			RequireDMatClose(t, a, l.MustDot(u), 1e-12)

			det, err := a.Det()
			require.NoError(t, err)
			// relative: the determinant grows with n
			require.InEpsilon(t, mat.Det(toDense(a)), det, 1e-10)
		})
	}
}

func TestLU_NonSquare(t *testing.T) {
	m := MustRows(t, []float64{1, 2, 3}, []float64{4, 5, 6})

	_, _, err := m.LU()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.EqualError(t, err, "LU: matrix: matrix is not square")

	_, err = m.Det()
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	require.PanicsWithError(t, "Inverse: matrix: matrix is not square", func() {
		matrix.InverseDMat(m)
	})
}

func TestDet_Static(t *testing.T) {
	require.Equal(t, -2, matrix.Det(matrix.Mat2FromArray([2][2]int{{1, 3}, {2, 4}})))
	require.Equal(t, 1.0, matrix.Det(matrix.Identity[matrix.D4, float64]()))

	m := RandomMat3(3)
	for i := 0; i < 3; i++ {
		m.Set(i, i, m.At(i, i)+3)
	}
	d := matrix.DMatFromSMat(m)
	require.InEpsilon(t, mat.Det(toDense(d)), matrix.Det(m), 1e-12)
}

// TestInverse_Scenario: rows (1,2,3),(4,7,6),(7,8,9) are invertible without
// row exchanges; both products are the identity within 1e-6 at binary32.
func TestInverse_Scenario(t *testing.T) {
	a := matrix.Mat3FromArray([3][3]float32{{1, 4, 7}, {2, 7, 8}, {3, 6, 9}})
	inv, ok := matrix.Inverse(a)
	require.True(t, ok)

	id := matrix.Identity[matrix.D3, float32]()
	require.True(t, matrix.Dot(a, inv).EqWithTolerance(id, tol32))
	require.True(t, matrix.Dot(inv, a).EqWithTolerance(id, tol32))
	require.InDelta(t, -0.625, inv.At(0, 0), tol32)

	d := matrix.DMatFromSMat(a)
	dinv, ok := matrix.InverseDMat(d)
	require.True(t, ok)
	require.True(t, dinv.Equal(matrix.DMatFromSMat(inv)))
}

func TestInverse_Singular(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
	}{
		{"rank deficient", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}},
		{"zero leading pivot", [][]float64{{0, 1}, {1, 0}}},
		{"below threshold", [][]float64{{1e-11, 0}, {0, 1}}},
		{"all zero", [][]float64{{0, 0}, {0, 0}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := MustRows(t, tc.rows...)
			before := m.Clone()
			inv, ok := matrix.InverseDMat(m)
			require.False(t, ok)
			require.Nil(t, inv)
			require.True(t, m.Equal(before), "input untouched")
		})
	}

	var z matrix.Mat2[float64]
	inv, ok := matrix.Inverse(z)
	require.False(t, ok)
	require.Equal(t, z, inv)
}

func TestInverse_RandomFloat64(t *testing.T) {
	for _, n := range []int{1, 2, 4, 6} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := diagDominant(t, n, int64(100+n))
			inv, ok := matrix.InverseDMat(a)
			require.True(t, ok)

			id := MustIdentity[float64](t, n)
			RequireDMatClose(t, id, a.MustDot(inv), tol64)
			RequireDMatClose(t, id, inv.MustDot(a), tol64)

			var want mat.Dense
			require.NoError(t, want.Inverse(toDense(a)))
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					require.InDelta(t, want.At(i, j), inv.At(i, j), 1e-10)
				}
			}
		})
	}
}

func TestRank(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float32
		want int
	}{
		{"zero 3x3", [][]float32{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, 0},
		{"one to nine", [][]float32{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 2},
		{"identity 4", [][]float32{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}, 4},
		{"wide", [][]float32{{1, 2, 3, 4}, {2, 4, 6, 8}}, 1},
		{"tall", [][]float32{{1, 0}, {0, 1}, {1, 1}}, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := MustRows(t, tc.rows...)
			before := m.Clone()
			require.Equal(t, tc.want, m.Rank())
			require.True(t, m.Equal(before), "input untouched")
		})
	}

	s := matrix.Mat3FromArray([3][3]int{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}})
	require.Equal(t, 2, s.Rank())
	require.Equal(t, 4, matrix.Identity[matrix.D4, float64]().Rank())
	require.Equal(t, 0, matrix.Mat2x3[float64]{}.Rank())
}

// TestRankWithTolerance: round-off left by elimination counts as nonzero
// for Rank but not for RankWithTolerance.
func TestRankWithTolerance(t *testing.T) {
	m := MustRows(t, []float64{1, 2}, []float64{2, 4 + 1e-13})
	require.Equal(t, 2, m.Rank())
	require.Equal(t, 1, m.RankWithTolerance(1e-9))

	s := matrix.Mat2FromArray([2][2]float64{{1, 2}, {2, 4 + 1e-13}})
	require.Equal(t, 2, s.Rank())
	require.Equal(t, 1, s.RankWithTolerance(1e-9))
}

func TestQR(t *testing.T) {
	a := RandomDMat(t, 5, 3, 21)
	q, r := matrix.QRDMat(a)
	require.Equal(t, 5, q.Rows())
	require.Equal(t, 5, q.Cols())
	RequireDMatClose(t, a, q.MustDot(r), 1e-12)
	RequireDMatClose(t, MustIdentity[float64](t, 5), q.Transpose().MustDot(q), 1e-12)
	for i := 0; i < 5; i++ {
		for j := 0; j < i && j < 3; j++ {
			require.Equal(t, 0.0, r.At(i, j))
		}
	}

	// |det| is the product of |R| diagonal
	sq := diagDominant(t, 4, 22)
	_, rs := matrix.QRDMat(sq)
	prod := 1.0
	for i := 0; i < 4; i++ {
		prod *= rs.At(i, i)
	}
	det, err := sq.Det()
	require.NoError(t, err)
	require.InDelta(t, math.Abs(det), math.Abs(prod), 1e-9)

	s := matrix.Mat3FromArray([3][3]float32{{1, 4, 7}, {2, 5, 8}, {3, 6, 10}})
	sq3, sr3 := matrix.QR(s)
	require.True(t, matrix.Dot(sq3, sr3).EqWithTolerance(s, 1e-4))
	require.True(t, matrix.Dot(sq3.Transpose(), sq3).EqWithTolerance(matrix.Identity[matrix.D3, float32](), 1e-5))
	require.Equal(t, float32(0), sr3.At(2, 0))
}
