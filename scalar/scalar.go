// SPDX-License-Identifier: MIT

// Package scalar defines the element capabilities every matrix routine is
// written against.
//
// Purpose:
//   - Name the algebraic hooks (Zero, One) once, for every built-in integer
//     and IEEE-754 binary32/binary64 type.
//   - Bundle the floating-point extras (Pi, Straight, Epsilon, trig, sqrt,
//     abs) behind the Float constraint so graphics and inversion code can
//     stay generic over float32 and float64.
//
// Each algorithm in package matrix declares the narrowest constraint it needs:
// Scalar for arithmetic, Float for anything that takes a square root or an
// angle.
package scalar

import (
	"math"
	"unsafe"
)

// Integer is satisfied by every built-in signed and unsigned integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is satisfied by IEEE-754 binary32 and binary64.
type Float interface {
	~float32 | ~float64
}

// Scalar is the element constraint of SMat and DMat: copyable, addable,
// subtractable, multipliable, divisible, negatable and ordered.
type Scalar interface {
	Integer | Float
}

// straight is half a turn in degrees.
const straight = 180

// Zero returns the additive identity of T.
func Zero[T Scalar]() T { return 0 }

// One returns the multiplicative identity of T.
func One[T Scalar]() T { return 1 }

// Pi returns π rounded to T.
func Pi[T Float]() T { return T(math.Pi) }

// Straight returns 180 in T (degrees in a straight angle).
func Straight[T Float]() T { return T(straight) }

// Epsilon returns the machine epsilon of T: 2⁻²³ for binary32, 2⁻⁵² for binary64.
func Epsilon[T Float]() T {
	var z T
	if unsafe.Sizeof(z) == 4 {
		return T(math.Nextafter32(1, 2) - 1)
	}

	return T(math.Nextafter(1, 2) - 1)
}

// Sin returns the sine of x (radians).
func Sin[T Float](x T) T { return T(math.Sin(float64(x))) }

// Cos returns the cosine of x (radians).
func Cos[T Float](x T) T { return T(math.Cos(float64(x))) }

// Tan returns the tangent of x (radians).
func Tan[T Float](x T) T { return T(math.Tan(float64(x))) }

// Sqrt returns the square root of x.
func Sqrt[T Float](x T) T { return T(math.Sqrt(float64(x))) }

// Abs returns |x|. Unsigned values are returned unchanged.
func Abs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// AbsDiff returns |a-b| without wrapping for unsigned T.
func AbsDiff[T Scalar](a, b T) T {
	if a < b {
		return b - a
	}

	return a - b
}

// Radian converts an angle in degrees to radians.
func Radian[T Float](deg T) T { return deg * Pi[T]() / Straight[T]() }

// Degree converts an angle in radians to degrees.
func Degree[T Float](rad T) T { return rad * Straight[T]() / Pi[T]() }
