// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (row-major literals, seeded random
//     matrices) and closeness assertions for both matrix flavours.
//   • Keep all data finite and well-conditioned unless a test says otherwise.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mats/matrix"
)

// Tolerances used by inverse round-trips (binary32 / binary64).
const (
	tol32 = 1e-6
	tol64 = 1e-12
)

// MustRows BUILDS a DMat from row-major literals or fails the test.
// Implementation:
//   - Stage 1: matrix.DMatFromRows(rows...).
//   - Stage 2: t.Fatalf on error.
//
// Notes:
//   - Row-major literals read naturally in tests; storage stays column-major.
func MustRows[T matrix.Scalar](t *testing.T, rows ...[]T) *matrix.DMat[T] {
	t.Helper()
	m, err := matrix.DMatFromRows(rows...)
	if err != nil {
		t.Fatalf("DMatFromRows: %v", err)
	}

	return m
}

// MustCols BUILDS a DMat from column literals or fails the test.
func MustCols[T matrix.Scalar](t *testing.T, cols ...[]T) *matrix.DMat[T] {
	t.Helper()
	m, err := matrix.NewDMat(cols...)
	if err != nil {
		t.Fatalf("NewDMat: %v", err)
	}

	return m
}

// MustIdentity RETURNS I_n or fails the test.
func MustIdentity[T matrix.Scalar](t *testing.T, n int) *matrix.DMat[T] {
	t.Helper()
	m, err := matrix.IdentityDMat[T](n)
	if err != nil {
		t.Fatalf("IdentityDMat(%d): %v", n, err)
	}

	return m
}

// RandomDMat FILLS an r×c DMat with deterministic U(-1,1) values by seed.
//
// Determinism:
//   - Deterministic for a fixed seed.
func RandomDMat(t testing.TB, r, c int, seed int64) *matrix.DMat[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.FillDMat(r, c, 0.0)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			m.Set(i, j, rng.Float64()*2-1)
		}
	}

	return m
}

// RandomMat3 RETURNS a seeded 3×3 SMat with U(-1,1) entries.
func RandomMat3(seed int64) matrix.Mat3[float64] {
	rng := rand.New(rand.NewSource(seed))
	var m matrix.Mat3[float64]
	for _, p := range []struct{ r, c int }{
		{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2},
	} {
		m.Set(p.r, p.c, rng.Float64()*2-1)
	}

	return m
}

// RequireDMatClose ASSERTS equal shapes and |want-got| <= tol cell-wise.
func RequireDMatClose(t *testing.T, want, got *matrix.DMat[float64], tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	var i, j int
	for i = 0; i < want.Rows(); i++ {
		for j = 0; j < want.Cols(); j++ {
			require.InDeltaf(t, want.At(i, j), got.At(i, j), tol, "cell (%d,%d)", i, j)
		}
	}
}

// RequireLowerUnit ASSERTS l is unit-lower-triangular.
func RequireLowerUnit[T matrix.Scalar](t *testing.T, l *matrix.DMat[T]) {
	t.Helper()
	for i := 0; i < l.Rows(); i++ {
		require.Equal(t, T(1), l.At(i, i), "diag %d", i)
		for j := i + 1; j < l.Cols(); j++ {
			require.Equal(t, T(0), l.At(i, j), "above diag (%d,%d)", i, j)
		}
	}
}

// RequireUpper ASSERTS u is upper-triangular within tol (elimination may
// leave round-off below the diagonal).
func RequireUpper[T matrix.Scalar](t *testing.T, u *matrix.DMat[T], tol float64) {
	t.Helper()
	for i := 1; i < u.Rows(); i++ {
		for j := 0; j < i; j++ {
			require.InDeltaf(t, 0, u.At(i, j), tol, "below diag (%d,%d)", i, j)
		}
	}
}
