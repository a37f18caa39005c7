// SPDX-License-Identifier: MIT

// Package matrix - column vectors.
//
// A column vector is an SMat[N, D1, T]; every SMat routine applies to it.
// Vec2, Vec3 and Vec4 are defined types over the same storage so they can
// carry the component readers (X, XY, XWZZ, …), setters and mixed
// constructors emitted into vector_gen.go. v.Mat() and VecNFromMat convert
// between the two views without copying more than the value itself.
package matrix

import "math"

// Vec2 is a 2-element column vector.
type Vec2[T Scalar] SMat[D2, D1, T]

// Vec3 is a 3-element column vector.
type Vec3[T Scalar] SMat[D3, D1, T]

// Vec4 is a 4-element column vector.
type Vec4[T Scalar] SMat[D4, D1, T]

// Inner returns the inner product Σ a_i·b_i.
func Inner[N Dim, T Scalar](a, b SMat[N, D1, T]) T {
	var sum T
	n := dimOf[N]()
	for i := 0; i < n; i++ {
		sum += a.data[i] * b.data[i]
	}

	return sum
}

// Cross returns a × b = (a.y·b.z − a.z·b.y, a.z·b.x − a.x·b.z, a.x·b.y − a.y·b.x).
func Cross[T Scalar](a, b SMat[D3, D1, T]) SMat[D3, D1, T] {
	var out SMat[D3, D1, T]
	out.data[0] = a.data[1]*b.data[2] - a.data[2]*b.data[1]
	out.data[1] = a.data[2]*b.data[0] - a.data[0]*b.data[2]
	out.data[2] = a.data[0]*b.data[1] - a.data[1]*b.data[0]

	return out
}

// Norm returns ‖v‖ = sqrt(vᵀ·v). The 1×1 product is taken in T and the square
// root in float64; integer T truncates the result.
func Norm[N Dim, T Scalar](v SMat[N, D1, T]) T {
	sq := Dot(v.Transpose(), v)

	return T(math.Sqrt(float64(sq.data[0])))
}

// Normalize returns v / ‖v‖, or the zero vector when ‖v‖ is zero.
func Normalize[N Dim, T Scalar](v SMat[N, D1, T]) SMat[N, D1, T] {
	n := Norm(v)
	if n == 0 {
		return SMat[N, D1, T]{}
	}

	return v.Div(n)
}

// Cross returns v × o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T](Cross(v.Mat(), o.Mat()))
}
