// SPDX-License-Identifier: MIT
package graphics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mats/graphics"
	"github.com/katalvlaran/mats/matrix"
	"github.com/katalvlaran/mats/scalar"
)

const tol = 1e-6

func requireVec4Near[T scalar.Float](t *testing.T, want, got matrix.Vec4[T], eps T) {
	t.Helper()
	require.Truef(t, got.EqWithTolerance(want, eps), "want %v, got %v", want.Array(), got.Array())
}

func TestTranslateScale2D(t *testing.T) {
	p := matrix.NewVec3(1.0, 2.0, 1.0)

	moved := p.TransformBy(graphics.Translate2D(matrix.NewVec2(2.0, 3.0)))
	require.Equal(t, matrix.NewVec3(3.0, 5.0, 1.0), moved)

	scaled := p.TransformBy(graphics.Scale2D(matrix.NewVec2(2.0, 3.0)))
	require.Equal(t, matrix.NewVec3(2.0, 6.0, 1.0), scaled)

	// directions (w = 0) ignore the translation
	d := matrix.NewVec3(1.0, 2.0, 0.0)
	require.Equal(t, d, d.TransformBy(graphics.Translate2D(matrix.NewVec2(9.0, 9.0))))
}

func TestTranslateScale3D(t *testing.T) {
	p := matrix.NewVec4[float32](1, 2, 3, 1)

	m := graphics.Translate3D(matrix.NewVec3[float32](2, 3, 4))
	require.Equal(t, matrix.NewVec4[float32](3, 5, 7, 1), p.TransformBy(m))
	require.Equal(t, float32(4), m.At(2, 3), "offset lives in column 3")

	s := graphics.Scale3D(matrix.NewVec3[float32](2, 3, 4))
	require.Equal(t, matrix.NewVec4[float32](2, 6, 12, 1), p.TransformBy(s))
}

func TestTranslate_Composition(t *testing.T) {
	v, w := matrix.NewVec2(1.5, -2.0), matrix.NewVec2(0.25, 4.0)
	got := matrix.Dot(graphics.Translate2D(v), graphics.Translate2D(w))
	require.Equal(t, graphics.Translate2D(v.Add(w)), got)

	v3, w3 := matrix.NewVec3(1.0, 2.0, 3.0), matrix.NewVec3(-4.0, 0.5, 8.0)
	got3 := matrix.Dot(graphics.Translate3D(v3), graphics.Translate3D(w3))
	require.Equal(t, graphics.Translate3D(v3.Add(w3)), got3)
}

func TestRotate_ZeroIsIdentity(t *testing.T) {
	require.True(t, graphics.Rotate2D(0.0).EqWithTolerance(matrix.Identity[matrix.D3, float64](), 0))

	id4 := matrix.Identity[matrix.D4, float64]()
	for name, m := range map[string]matrix.Mat4[float64]{
		"x":    graphics.Rotate3DX(0.0),
		"y":    graphics.Rotate3DY(0.0),
		"z":    graphics.Rotate3DZ(0.0),
		"axis": graphics.Rotate3D(matrix.NewVec3(1.0, 2.0, 3.0), 0),
	} {
		require.True(t, m.EqWithTolerance(id4, 0), name)
	}
}

func TestRotate2D_FullTurn(t *testing.T) {
	eps := 4 * scalar.Epsilon[float64]()
	full := graphics.Rotate2D(2 * math.Pi)
	require.True(t, full.EqWithTolerance(matrix.Identity[matrix.D3, float64](), eps))

	full32 := graphics.Rotate2D(2 * scalar.Pi[float32]())
	require.True(t, full32.EqWithTolerance(matrix.Identity[matrix.D3, float32](), tol))

	quarter := matrix.NewVec3(1.0, 0.0, 1.0).TransformBy(graphics.Rotate2D(math.Pi / 2))
	require.True(t, quarter.EqWithTolerance(matrix.NewVec3(0.0, 1.0, 1.0), eps))
}

func TestRotate3D_Axes(t *testing.T) {
	half := scalar.Pi[float32]() / 2
	tests := []struct {
		name string
		m    matrix.Mat4[float32]
		in   matrix.Vec4[float32]
		want matrix.Vec4[float32]
	}{
		{"x: y to z", graphics.Rotate3DX(half), matrix.NewVec4[float32](0, 1, 0, 1), matrix.NewVec4[float32](0, 0, 1, 1)},
		{"y: x to -z", graphics.Rotate3DY(half), matrix.NewVec4[float32](1, 0, 0, 1), matrix.NewVec4[float32](0, 0, -1, 1)},
		{"z: x to y", graphics.Rotate3DZ(half), matrix.NewVec4[float32](1, 0, 0, 1), matrix.NewVec4[float32](0, 1, 0, 1)},
		{"axis y", graphics.Rotate3D(matrix.NewVec3[float32](0, 1, 0), half), matrix.NewVec4[float32](1, 0, 0, 1), matrix.NewVec4[float32](0, 0, -1, 1)},
		{"axis y unnormalised", graphics.Rotate3D(matrix.NewVec3[float32](0, 5, 0), half), matrix.NewVec4[float32](1, 0, 0, 1), matrix.NewVec4[float32](0, 0, -1, 1)},
		{"axis z", graphics.Rotate3D(matrix.NewVec3[float32](0, 0, 1), half), matrix.NewVec4[float32](1, 0, 0, 1), matrix.NewVec4[float32](0, 1, 0, 1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			requireVec4Near(t, tc.want, tc.in.TransformBy(tc.m), tol)
		})
	}
}

func TestRotate3D_NormalisesAxis(t *testing.T) {
	for _, axis := range []matrix.Vec3[float64]{
		matrix.NewVec3(1.0, 2.0, 3.0),
		matrix.NewVec3(0.0, 0.0, -7.0),
		matrix.NewVec3(1e-3, 1e-3, 0.0),
	} {
		want := graphics.Rotate3DNoNorm(axis.Normalize(), 0.7)
		require.Equal(t, want, graphics.Rotate3D(axis, 0.7))

		// a rotation is orthonormal: R·Rᵀ = I
		r := graphics.Rotate3D(axis, 0.7)
		rrt := matrix.Dot(r, r.Transpose())
		require.True(t, rrt.EqWithTolerance(matrix.Identity[matrix.D4, float64](), 1e-12))
	}

	// without normalisation a long axis scales the result
	long := graphics.Rotate3DNoNorm(matrix.NewVec3(0.0, 2.0, 0.0), 0.7)
	require.NotEqual(t, graphics.Rotate3DY(0.7), long)
	require.True(t, graphics.Rotate3D(matrix.NewVec3(0.0, 2.0, 0.0), 0.7).EqWithTolerance(graphics.Rotate3DY(0.7), 1e-15))
}

func TestLookAt(t *testing.T) {
	eye := matrix.NewVec3(1.0, 0.0, 1.0)
	center := matrix.NewVec3(0.0, 0.0, 1.0)
	up := matrix.NewVec3(0.0, 1.0, 0.0)
	view := graphics.LookAt(eye, center, up)

	got := matrix.NewVec4(1.0, 0.0, 0.0, 1.0).TransformBy(view)
	requireVec4Near(t, matrix.NewVec4(1.0, 0.0, 0.0, 1.0), got, 1e-15)

	// the eye maps to the origin
	origin := matrix.Vec4FromVec3(eye, 1).TransformBy(view)
	requireVec4Near(t, matrix.NewVec4(0.0, 0.0, 0.0, 1.0), origin, 1e-15)

	// the target lies on the negative z axis
	target := matrix.Vec4FromVec3(center, 1).TransformBy(view)
	requireVec4Near(t, matrix.NewVec4(0.0, 0.0, -1.0, 1.0), target, 1e-15)
}

// TestPerspective: x and y are exact at binary32; z is 2fn/(n−f) = −200/999.
func TestPerspective(t *testing.T) {
	proj := graphics.Perspective[float32](math.Pi/2, 16.0/9, 0.1, 100)
	v := matrix.NewVec4[float32](1, 0, 0, 1).TransformBy(proj)

	require.Equal(t, float32(9.0/16), v.X())
	require.Equal(t, float32(0), v.Y())
	require.InDelta(t, -200.0/999, v.Z(), tol)
	require.Equal(t, float32(0), v.W(), "w = -z_in")

	require.Equal(t, float32(-1), proj.At(3, 2))
	require.Equal(t, float32(0), proj.At(3, 3))

	// points on the near and far planes land on z/w = -1 and +1
	for _, tc := range []struct {
		z, ndc float64
	}{{-0.1, -1}, {-100, 1}} {
		p := matrix.NewVec4(0, 0, tc.z, 1).TransformBy(graphics.Perspective(math.Pi/2, 16.0/9, 0.1, 100.0))
		require.InDelta(t, tc.ndc, p.Z()/p.W(), 1e-12)
	}
}

func TestOrthographic(t *testing.T) {
	proj := graphics.Orthographic(graphics.Bounds[float64]{Left: -1, Top: 1, Right: 1, Bottom: -1}, -10, 10)
	v := matrix.NewVec4(1.0, 2.0, 2.0, 1.0).TransformBy(proj)
	requireVec4Near(t, matrix.NewVec4(1.0, 2.0, -0.2, 1.0), v, 1e-15)

	// a screen-space box maps its corners to ±1
	screen := graphics.Orthographic(graphics.Bounds[float64]{Left: 0, Top: 600, Right: 800, Bottom: 0}, -1, 1)
	requireVec4Near(t, matrix.NewVec4(1.0, 1.0, 0.0, 1.0), matrix.NewVec4(800.0, 600.0, 0.0, 1.0).TransformBy(screen), 1e-15)
	requireVec4Near(t, matrix.NewVec4(-1.0, -1.0, 0.0, 1.0), matrix.NewVec4(0.0, 0.0, 0.0, 1.0).TransformBy(screen), 1e-15)
	require.InDelta(t, -1.0, screen.At(0, 3), 1e-15, "translation column")
	require.Equal(t, 0.0, screen.At(3, 0))
}
