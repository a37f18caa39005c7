// Package matrix provides small dense matrices and vectors in two flavours.
//
// The matrix package provides:
//
//   - SMat[R, C, T]: extents fixed at compile time (D1…D4), value semantics,
//     inline storage. Products, transposes and square-only routines are
//     shape-checked by the compiler. Aliases Mat2…Mat4x3; column
//     vectors are SMat[N, D1, T].
//   - Vec2, Vec3, Vec4: column vectors with component readers (X, XY, XWZZ…),
//     setters and mixed constructors (vector_gen.go).
//   - DMat[T]: extents carried at run time. Checked operations return
//     *DimensionsMismatchError; Must* forms and indexers panic.
//   - LU, determinant, Gauss–Jordan inverse, rank and Householder QR for both flavours,
//     backed by the kernels in matrix/ops.
//
// Storage is column-major everywhere: element (row, col) lives at
// col*rows + row. Nested-slice and array constructors read each inner slice as
// one column; DMatFromRows reads rows.
//
// See the examples in this package for usage patterns.
package matrix

//go:generate go run ../internal/cmd/swizzlegen -out vector_gen.go
