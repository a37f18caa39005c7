// SPDX-License-Identifier: MIT

package graphics

import (
	"github.com/katalvlaran/mats/matrix"
	"github.com/katalvlaran/mats/scalar"
)

// Bounds is the (left, top, right, bottom) view rectangle of Orthographic.
type Bounds[T scalar.Float] struct {
	Left, Top, Right, Bottom T
}

// Translate2D returns the homogeneous 2D translation by v:
//
//	| 1 0 v.x |
//	| 0 1 v.y |
//	| 0 0  1  |
func Translate2D[T scalar.Float](v matrix.Vec2[T]) matrix.Mat3[T] {
	return matrix.Mat3FromArray([3][3]T{
		{1, 0, 0},
		{0, 1, 0},
		{v.X(), v.Y(), 1},
	})
}

// Scale2D returns diag(v.x, v.y, 1).
func Scale2D[T scalar.Float](v matrix.Vec2[T]) matrix.Mat3[T] {
	return matrix.Mat3FromArray([3][3]T{
		{v.X(), 0, 0},
		{0, v.Y(), 0},
		{0, 0, 1},
	})
}

// Rotate2D returns the counter-clockwise rotation by angle:
//
//	| c -s 0 |
//	| s  c 0 |
//	| 0  0 1 |
func Rotate2D[T scalar.Float](angle T) matrix.Mat3[T] {
	c, s := scalar.Cos(angle), scalar.Sin(angle)

	return matrix.Mat3FromArray([3][3]T{
		{c, s, 0},
		{-s, c, 0},
		{0, 0, 1},
	})
}

// Translate3D returns the homogeneous 3D translation by v (column 3 holds v).
func Translate3D[T scalar.Float](v matrix.Vec3[T]) matrix.Mat4[T] {
	return matrix.Mat4FromArray([4][4]T{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{v.X(), v.Y(), v.Z(), 1},
	})
}

// Scale3D returns diag(v.x, v.y, v.z, 1).
func Scale3D[T scalar.Float](v matrix.Vec3[T]) matrix.Mat4[T] {
	return matrix.Mat4FromArray([4][4]T{
		{v.X(), 0, 0, 0},
		{0, v.Y(), 0, 0},
		{0, 0, v.Z(), 0},
		{0, 0, 0, 1},
	})
}

// Rotate3DX rotates about the x axis: y goes towards z.
func Rotate3DX[T scalar.Float](angle T) matrix.Mat4[T] {
	c, s := scalar.Cos(angle), scalar.Sin(angle)

	return matrix.Mat4FromArray([4][4]T{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	})
}

// Rotate3DY rotates about the y axis: z goes towards x.
func Rotate3DY[T scalar.Float](angle T) matrix.Mat4[T] {
	c, s := scalar.Cos(angle), scalar.Sin(angle)

	return matrix.Mat4FromArray([4][4]T{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	})
}

// Rotate3DZ rotates about the z axis: x goes towards y.
func Rotate3DZ[T scalar.Float](angle T) matrix.Mat4[T] {
	c, s := scalar.Cos(angle), scalar.Sin(angle)

	return matrix.Mat4FromArray([4][4]T{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// Rotate3D returns the rotation by angle about axis (Rodrigues' formula).
// The axis is normalised first, so any non-zero length works; a zero axis
// yields diag(c, c, c, 1).
func Rotate3D[T scalar.Float](axis matrix.Vec3[T], angle T) matrix.Mat4[T] {
	return Rotate3DNoNorm(axis.Normalize(), angle)
}

// Rotate3DNoNorm is Rotate3D for an axis the caller guarantees to be of unit
// length. A longer axis silently scales and shears the result.
//
// Implementation:
//   - c = cos θ, s = sin θ, c1 = 1 − c.
//   - R = c·I + c1·(a aᵀ) + s·[a]×.
func Rotate3DNoNorm[T scalar.Float](axis matrix.Vec3[T], angle T) matrix.Mat4[T] {
	x, y, z := axis.X(), axis.Y(), axis.Z()
	c, s := scalar.Cos(angle), scalar.Sin(angle)
	c1 := 1 - c

	xy, yz, xz := x*y*c1, y*z*c1, x*z*c1
	xs, ys, zs := x*s, y*s, z*s

	return matrix.Mat4FromArray([4][4]T{
		{c + x*x*c1, xy + zs, xz - ys, 0},
		{xy - zs, c + y*y*c1, yz + xs, 0},
		{xz + ys, yz - xs, c + z*z*c1, 0},
		{0, 0, 0, 1},
	})
}

// LookAt returns the right-handed view matrix of a camera at eye looking at
// center with the given up direction.
//
// Implementation:
//   - Stage 1: z = normalize(eye − center), x = normalize(up × z), y = z × x.
//   - Stage 2: rows 0..2 hold x, y, z; column 3 holds (−x·eye, −y·eye, −z·eye, 1).
//
// eye == center, or up parallel to the view direction, degenerates to zero
// rows (Normalize maps the zero vector to itself).
func LookAt[T scalar.Float](eye, center, up matrix.Vec3[T]) matrix.Mat4[T] {
	z := eye.Sub(center).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	return matrix.Mat4FromArray([4][4]T{
		{x.X(), y.X(), z.X(), 0},
		{x.Y(), y.Y(), z.Y(), 0},
		{x.Z(), y.Z(), z.Z(), 0},
		{-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1},
	})
}

// Perspective returns the OpenGL-style projection for a vertical field of
// view fov (radians), aspect = width/height and clip planes near, far.
// With F = 1/tan(fov/2) and r = 1/(near − far):
//
//	| F/aspect 0      0          0      |
//	|    0     F      0          0      |
//	|    0     0  (f+n)·r    2·f·n·r    |
//	|    0     0     -1          0      |
//
// Since near < far makes r negative, M34 = 2·f·n·r is negative too: with
// near = 0.1 and far = 100 the point (0, 0, 0, 1) maps to
// z = 2fn/(n−f) = −200/999, not +200/999.
func Perspective[T scalar.Float](fov, aspect, near, far T) matrix.Mat4[T] {
	f := 1 / scalar.Tan(fov/2)
	r := 1 / (near - far)

	return matrix.Mat4FromArray([4][4]T{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) * r, -1},
		{0, 0, 2 * far * near * r, 0},
	})
}

// Orthographic returns the parallel projection of the box b × [near, far]:
// diagonal 2/(r−l), 2/(t−b), 2/(n−f), 1 and translation column
// −(r+l)/(r−l), −(t+b)/(t−b), −(n+f)/(n−f), 1.
func Orthographic[T scalar.Float](b Bounds[T], near, far T) matrix.Mat4[T] {
	rl := 1 / (b.Right - b.Left)
	tb := 1 / (b.Top - b.Bottom)
	nf := 1 / (near - far)

	return matrix.Mat4FromArray([4][4]T{
		{2 * rl, 0, 0, 0},
		{0, 2 * tb, 0, 0},
		{0, 0, 2 * nf, 0},
		{-(b.Right + b.Left) * rl, -(b.Top + b.Bottom) * tb, -(near + far) * nf, 1},
	})
}
