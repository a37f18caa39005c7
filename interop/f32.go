// SPDX-License-Identifier: MIT

package interop

import (
	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/mats/matrix"
)

// ToF32Vec2 converts v.
func ToF32Vec2(v matrix.Vec2[float32]) f32.Vec2 { return f32.Vec2(v.Array()) }

// ToF32Vec3 converts v.
func ToF32Vec3(v matrix.Vec3[float32]) f32.Vec3 { return f32.Vec3(v.Array()) }

// ToF32Vec4 converts v.
func ToF32Vec4(v matrix.Vec4[float32]) f32.Vec4 { return f32.Vec4(v.Array()) }

// FromF32Vec2 converts v.
func FromF32Vec2(v f32.Vec2) matrix.Vec2[float32] { return matrix.Vec2FromArray([2]float32(v)) }

// FromF32Vec3 converts v.
func FromF32Vec3(v f32.Vec3) matrix.Vec3[float32] { return matrix.Vec3FromArray([3]float32(v)) }

// FromF32Vec4 converts v.
func FromF32Vec4(v f32.Vec4) matrix.Vec4[float32] { return matrix.Vec4FromArray([4]float32(v)) }

// ToF32Mat3 reorders m into f32's row-major layout.
func ToF32Mat3(m matrix.Mat3[float32]) f32.Mat3 {
	var out f32.Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i*3+j] = m.At(i, j)
		}
	}

	return out
}

// FromF32Mat3 is the inverse of ToF32Mat3.
func FromF32Mat3(a f32.Mat3) matrix.Mat3[float32] {
	var m matrix.Mat3[float32]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, a[i*3+j])
		}
	}

	return m
}

// ToF32Mat4 reorders m into f32's row-major layout.
func ToF32Mat4(m matrix.Mat4[float32]) f32.Mat4 {
	var out f32.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i*4+j] = m.At(i, j)
		}
	}

	return out
}

// FromF32Mat4 is the inverse of ToF32Mat4.
func FromF32Mat4(a f32.Mat4) matrix.Mat4[float32] {
	var m matrix.Mat4[float32]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m.Set(i, j, a[i*4+j])
		}
	}

	return m
}
