// SPDX-License-Identifier: MIT

package matrix

// Center exposes the cell padding rule to matrix_test.
var Center = center

// ResolvedOptions returns the effective cell width and precision after opts.
func ResolvedOptions(opts ...Option) (cellWidth, precision int) {
	o := gatherOptions(opts...)

	return o.cellWidth, o.precision
}

// NewUninit exposes the internal zero-filled allocator.
func NewUninit[T Scalar](rows, cols int) *DMat[T] { return newUninit[T](rows, cols) }
