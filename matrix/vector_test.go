// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Vec2/Vec3/Vec4: component
// readers, setters, mixed constructors, cross product and normalisation.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mats/matrix"
	"github.com/katalvlaran/mats/scalar"
)

func TestSwizzle_Readers(t *testing.T) {
	v := matrix.NewVec4(1, 2, 3, 4)

	require.Equal(t, 1, v.X())
	require.Equal(t, 4, v.W())
	require.Equal(t, matrix.NewVec2(3, 2), v.ZY())
	require.Equal(t, matrix.NewVec3(4, 4, 1), v.WWX())
	require.Equal(t, matrix.NewVec4(4, 3, 2, 1), v.WZYX())
	require.Equal(t, matrix.NewVec4(1, 4, 3, 3), v.XWZZ())

	// readers may be longer than the source vector
	u := matrix.NewVec2(5.0, 6.0)
	require.Equal(t, matrix.NewVec4(5.0, 6.0, 6.0, 5.0), u.XYYX())
	require.Equal(t, matrix.NewVec3(6.0, 6.0, 6.0), u.YYY())

	w := matrix.NewVec3[uint8](7, 8, 9)
	require.Equal(t, matrix.NewVec2[uint8](9, 7), w.ZX())
	require.Equal(t, [3]uint8{7, 8, 9}, w.Array())
	require.Equal(t, uint8(8), w.At(1))
	require.Panics(t, func() { _ = w.At(3) })
}

func TestSwizzle_Setters(t *testing.T) {
	var v matrix.Vec4[float32]
	v.SetX(1)
	v.SetY(2)
	v.SetZ(3)
	v.SetW(4)
	require.Equal(t, matrix.NewVec4[float32](1, 2, 3, 4), v)

	u := matrix.NewVec2(0, 0)
	u.SetY(9)
	require.Equal(t, 9, u.Y())
	require.Equal(t, 0, u.X())
}

func TestMixedConstructors(t *testing.T) {
	want3 := matrix.NewVec3(1, 2, 3)
	want4 := matrix.NewVec4(1, 2, 3, 4)

	require.Equal(t, want3, matrix.Vec3FromVec2(matrix.NewVec2(1, 2), 3))
	require.Equal(t, want3, matrix.Vec3FromScalarVec2(1, matrix.NewVec2(2, 3)))
	require.Equal(t, want3, matrix.Vec3FromArray([3]int{1, 2, 3}))

	require.Equal(t, want4, matrix.Vec4FromVec2(matrix.NewVec2(1, 2), 3, 4))
	require.Equal(t, want4, matrix.Vec4FromScalarVec2(1, matrix.NewVec2(2, 3), 4))
	require.Equal(t, want4, matrix.Vec4FromScalarsVec2(1, 2, matrix.NewVec2(3, 4)))
	require.Equal(t, want4, matrix.Vec4FromVec2s(matrix.NewVec2(1, 2), matrix.NewVec2(3, 4)))
	require.Equal(t, want4, matrix.Vec4FromVec3(matrix.NewVec3(1, 2, 3), 4))
	require.Equal(t, want4, matrix.Vec4FromScalarVec3(1, matrix.NewVec3(2, 3, 4)))
	require.Equal(t, want4, matrix.Vec4FromArray([4]int{1, 2, 3, 4}))

	col := matrix.New[matrix.D4, matrix.D1]([]int{1, 2, 3, 4})
	require.Equal(t, want4, matrix.Vec4FromMat(col))
	require.Equal(t, col, want4.Mat())
}

func TestVector_Arithmetic(t *testing.T) {
	a := matrix.NewVec3(1.0, 2.0, 3.0)
	b := matrix.NewVec3(4.0, 5.0, 6.0)

	require.Equal(t, matrix.NewVec3(5.0, 7.0, 9.0), a.Add(b))
	require.Equal(t, matrix.NewVec3(3.0, 3.0, 3.0), b.Sub(a))
	require.Equal(t, matrix.NewVec3(2.0, 4.0, 6.0), a.Scale(2))
	require.Equal(t, matrix.NewVec3(0.5, 1.0, 1.5), a.Div(2))
	require.Equal(t, matrix.NewVec3(-1.0, -2.0, -3.0), a.Neg())
	require.Equal(t, 32.0, a.Dot(b))
	require.Equal(t, 32.0, matrix.Inner(a.Mat(), b.Mat()))
	require.True(t, a.EqWithTolerance(matrix.NewVec3(1.0, 2.0, 3.0+1e-9), 1e-8))
	require.Equal(t, 5.0, matrix.NewVec2(3.0, 4.0).Norm())
}

func TestCross_Laws(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 20; i++ {
		a := matrix.NewVec3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		b := matrix.NewVec3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)

		axb := a.Cross(b)
		require.True(t, axb.EqWithTolerance(b.Cross(a).Neg(), 1e-15), "anti-commutative")
		require.InDelta(t, 0, a.Dot(axb), 1e-15, "a·(a×b) = 0")
		require.InDelta(t, 0, b.Dot(axb), 1e-15, "b·(a×b) = 0")
		require.True(t, a.Cross(a).EqWithTolerance(matrix.Vec3[float64]{}, 1e-15), "a×a = 0")
	}

	x, y := matrix.NewVec3(1, 0, 0), matrix.NewVec3(0, 1, 0)
	require.Equal(t, matrix.NewVec3(0, 0, 1), x.Cross(y))
	require.Equal(t, matrix.NewVec3(0, 0, 1).Mat(), matrix.Cross(x.Mat(), y.Mat()))
}

func TestNormalize(t *testing.T) {
	eps32 := 4 * scalar.Epsilon[float32]()
	for _, v := range []matrix.Vec3[float32]{
		matrix.NewVec3[float32](3, 4, 12),
		matrix.NewVec3[float32](1e-3, 0, 0),
		matrix.NewVec3[float32](-7, 0.25, 100),
	} {
		n := v.Normalize().Norm()
		require.InDelta(t, 1, n, float64(eps32), "v=%v", v.Array())
	}

	eps64 := 4 * scalar.Epsilon[float64]()
	v4 := matrix.NewVec4(1.0, -2.0, 3.0, -4.0)
	require.InDelta(t, 1, v4.Normalize().Norm(), eps64)

	// zero in, zero out
	require.Equal(t, matrix.Vec3[float32]{}, matrix.Vec3[float32]{}.Normalize())
	require.Equal(t, matrix.SMat[matrix.D2, matrix.D1, float64]{}, matrix.Normalize(matrix.SMat[matrix.D2, matrix.D1, float64]{}))

	// integers truncate the norm
	require.Equal(t, matrix.NewVec2(1, 0), matrix.NewVec2(5, 0).Normalize())
}

func TestTransformBy(t *testing.T) {
	v := matrix.NewVec3(1.0, 2.0, 3.0)
	require.Equal(t, v, v.TransformBy(matrix.Identity[matrix.D3, float64]()))

	s := matrix.Mat3FromArray([3][3]float64{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}})
	require.Equal(t, matrix.NewVec3(2.0, 6.0, 12.0), v.TransformBy(s))

	// column 2 of a translation matrix carries the offset
	tr := matrix.Mat3FromArray([3][3]float64{{1, 0, 0}, {0, 1, 0}, {5, -1, 1}})
	require.Equal(t, matrix.NewVec3(6.0, 1.0, 1.0), matrix.NewVec3(1.0, 2.0, 1.0).TransformBy(tr))
}

func TestVector_String(t *testing.T) {
	v := matrix.NewVec2[int](1, 2)
	require.Equal(t, v.Mat().String(), v.String())
	require.Contains(t, v.String(), "Mat<int, 2, 1> {")
}
