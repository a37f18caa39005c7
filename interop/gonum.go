// SPDX-License-Identifier: MIT

package interop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mats/matrix"
)

// ToGonum copies m into a new *mat.Dense, converting every element to float64.
func ToGonum[T matrix.Scalar](m *matrix.DMat[T]) *mat.Dense {
	rows, cols := m.Shape()
	data := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = float64(m.At(i, j))
		}
	}

	return mat.NewDense(rows, cols, data)
}

// StaticToGonum is ToGonum for a static matrix.
func StaticToGonum[R, C matrix.Dim, T matrix.Scalar](m matrix.SMat[R, C, T]) *mat.Dense {
	return ToGonum(matrix.DMatFromSMat(m))
}

// FromGonum copies any gonum matrix into a new DMat.
//
// Errors:
//   - matrix.ErrInvalidDimensions for an empty input.
func FromGonum(a mat.Matrix) (*matrix.DMat[float64], error) {
	rows, cols := a.Dims()
	m, err := matrix.FillDMat[float64](rows, cols, 0)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.Set(i, j, a.At(i, j))
		}
	}

	return m, nil
}

// GonumToStatic copies a gonum matrix into an SMat of the requested shape.
//
// Errors:
//   - *matrix.DimensionsMismatchError when the shapes differ.
func GonumToStatic[R, C matrix.Dim](a mat.Matrix) (matrix.SMat[R, C, float64], error) {
	d, err := FromGonum(a)
	if err != nil {
		return matrix.SMat[R, C, float64]{}, err
	}

	return matrix.ToSMat[R, C](d)
}
