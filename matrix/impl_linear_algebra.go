// SPDX-License-Identifier: MIT
// Package matrix - square-matrix routines (LU, determinant, inverse), rank
// and QR for both carriers.
//
// Purpose:
//   - Instantiate the kernels of package ops once per carrier: *SMat and *DMat
//     both satisfy ops.Grid, so the algorithms exist in exactly one place.
//   - Keep inputs untouched: every routine works on a copy (failing early never
//     mutates the receiver).
//
// Notes:
//   - Static square-only routines are package functions over SMat[N, N, T];
//     a rectangular argument does not compile.
//   - DMat checks squareness at run time: LU/Det return ErrNonSquare wrapped
//     with the operation tag, Inverse panics (inverting a rectangular matrix is
//     a programming error).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/mats/matrix/ops"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opDot       = "Dot"
	opInverse   = "Inverse"
	opLU        = "LU"
	opDet       = "Det"
	opToSMat    = "ToSMat"
	opNewDMat   = "NewDMat"
	opFromRows  = "DMatFromRows"
	opFill      = "FillDMat"
	opIdentity  = "IdentityDMat"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// LU factorises the square m into unit-lower-triangular L and
// upper-triangular U.
//
// Implementation:
//   - Stage 1: L = I, U = m (copy).
//   - Stage 2: ops.LU: at each pivot i a zero U[i,i] is swapped once with the
//     last row; a pivot that stays zero yields zero multipliers.
//
// Behavior highlights:
//   - L·U equals m up to that row swap; no permutation is returned.
//
// Complexity:
//   - Time O(N³), Space O(1).
func LU[N Dim, T Scalar](m SMat[N, N, T]) (l, u SMat[N, N, T]) {
	l, u = Identity[N, T](), m
	ops.LU[T](&l, &u)

	return l, u
}

// Det returns Π L[i,i]·U[i,i] of LU(m).
func Det[N Dim, T Scalar](m SMat[N, N, T]) T {
	l, u := LU(m)

	return ops.Det[T](&l, &u)
}

// Inverse returns m⁻¹ by Gauss–Jordan elimination without row pivoting.
// ok is false when a pivot's magnitude is at or below 1e-10; the returned
// matrix is then the zero value.
//
// Complexity:
//   - Time O(N³), Space O(1).
func Inverse[N Dim, T Float](m SMat[N, N, T]) (inv SMat[N, N, T], ok bool) {
	w, e := m, Identity[N, T]()
	if !ops.GaussJordan[T](&w, &e) {
		return SMat[N, N, T]{}, false
	}

	return e, true
}

// Rank returns the number of nonzero rows after forward elimination, with
// exact comparison against zero. See RankWithTolerance for noisy input.
func (m SMat[R, C, T]) Rank() int {
	w := m

	return ops.Rank[T](&w)
}

// RankWithTolerance is Rank with |x| <= tol counted as zero.
func (m SMat[R, C, T]) RankWithTolerance(tol T) int {
	w := m

	return ops.RankWithTolerance[T](&w, tol)
}

// LU factorises the square receiver; see the static LU for the pivoting rule.
//
// Errors:
//   - ErrNonSquare when rows != cols.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the two results.
func (m *DMat[T]) LU() (l, u *DMat[T], err error) {
	if err = validateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	l, u = identityUnchecked[T](m.rows), m.Clone()
	ops.LU[T](l, u)

	return l, u, nil
}

// Det returns the determinant via LU.
//
// Errors:
//   - ErrNonSquare when rows != cols.
func (m *DMat[T]) Det() (T, error) {
	if err := validateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	l, u, _ := m.LU()

	return ops.Det[T](l, u), nil
}

// InverseDMat returns (m⁻¹, true), or (nil, false) when Gauss–Jordan meets a
// pivot with magnitude at or below 1e-10. A non-square m panics.
// It is a function rather than a method because it needs T to be Float.
func InverseDMat[T Float](m *DMat[T]) (*DMat[T], bool) {
	if err := validateSquare(m); err != nil {
		panic(matrixErrorf(opInverse, err))
	}
	w, e := m.Clone(), identityUnchecked[T](m.rows)
	if !ops.GaussJordan[T](w, e) {
		return nil, false
	}

	return e, true
}

// Rank returns the number of nonzero rows after forward elimination of a copy.
func (m *DMat[T]) Rank() int {
	return ops.Rank[T](m.Clone())
}

// RankWithTolerance is Rank with |x| <= tol counted as zero.
func (m *DMat[T]) RankWithTolerance(tol T) int {
	return ops.RankWithTolerance[T](m.Clone(), tol)
}

// QR factorises m into an orthogonal Q and an upper-triangular (upper
// trapezoidal when R != C) R with Q·R = m, by Householder reflections.
// Any shape is accepted; zero columns are left as they are.
//
// Complexity:
//   - Time O(R²·C), Space O(R).
func QR[R, C Dim, T Float](m SMat[R, C, T]) (q SMat[R, R, T], r SMat[R, C, T]) {
	q, r = Identity[R, T](), m
	ops.QR[T](&q, &r)

	return q, r
}

// QRDMat is QR for a runtime-sized matrix; both results are fresh.
func QRDMat[T Float](m *DMat[T]) (q, r *DMat[T]) {
	q, r = identityUnchecked[T](m.rows), m.Clone()
	ops.QR[T](q, r)

	return q, r
}
