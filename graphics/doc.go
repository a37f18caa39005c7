// Package graphics builds the affine and projection matrices of a 2D/3D
// rendering pipeline on top of package matrix.
//
// ✨ Key features:
//   - 2D (Mat3): Translate2D, Scale2D, Rotate2D
//   - 3D (Mat4): Translate3D, Scale3D, Rotate3DX/Y/Z, Rotate3D (any axis)
//   - camera: LookAt, Perspective, Orthographic
//
// Every builder returns a column-major matrix that premultiplies column
// vectors, v' = M·v, so a pipeline composes right to left:
//
//	mvp := matrix.Dot(proj, matrix.Dot(view, model))
//	clip := matrix.NewVec4(x, y, z, 1).TransformBy(mvp)
//
// Angles are radians; scalar.Radian converts from degrees. All builders are
// generic over float32 and float64 (scalar.Float) and allocate nothing.
package graphics
