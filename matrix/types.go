// SPDX-License-Identifier: MIT

// Package matrix: compile-time dimensions and the named static shapes.
// This file contains ONLY type-level vocabulary: the D1…D4 dimension markers,
// the Dim constraint, and the MatRxC aliases over SMat.
package matrix

import "github.com/katalvlaran/mats/scalar"

// Scalar and Float re-export the element constraints for local signatures.
type (
	Scalar = scalar.Scalar
	Float  = scalar.Float
)

// maxDim is the largest static extent; SMat keeps maxDim² cells inline.
const maxDim = 4

// D1 is the static extent 1.
type D1 struct{}

// D2 is the static extent 2.
type D2 struct{}

// D3 is the static extent 3.
type D3 struct{}

// D4 is the static extent 4.
type D4 struct{}

// N returns 1.
func (D1) N() int { return 1 }

// N returns 2.
func (D2) N() int { return 2 }

// N returns 3.
func (D3) N() int { return 3 }

// N returns 4.
func (D4) N() int { return 4 }

// Dim is satisfied by the zero-size extent markers. A Dim type parameter
// carries a matrix extent in the type, so shapes are checked by the compiler.
type Dim interface {
	D1 | D2 | D3 | D4
	N() int
}

// dimOf returns the extent carried by D.
func dimOf[D Dim]() int {
	var d D

	return d.N()
}

// Named square shapes.
type (
	Mat2[T scalar.Scalar] = SMat[D2, D2, T]
	Mat3[T scalar.Scalar] = SMat[D3, D3, T]
	Mat4[T scalar.Scalar] = SMat[D4, D4, T]
)

// Named rectangular shapes; MatRxC has R rows and C columns.
type (
	Mat2x3[T scalar.Scalar] = SMat[D2, D3, T]
	Mat2x4[T scalar.Scalar] = SMat[D2, D4, T]
	Mat3x2[T scalar.Scalar] = SMat[D3, D2, T]
	Mat3x4[T scalar.Scalar] = SMat[D3, D4, T]
	Mat4x2[T scalar.Scalar] = SMat[D4, D2, T]
	Mat4x3[T scalar.Scalar] = SMat[D4, D3, T]
)
