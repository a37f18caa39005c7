// SPDX-License-Identifier: MIT
package uniform_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mats/matrix"
	"github.com/katalvlaran/mats/uniform"
)

// recorder keeps every call it receives together with a copy of its data.
type recorder struct {
	calls []uniform.Call
	data  [][]float64
}

func (r *recorder) SendUniform(c uniform.Call) error {
	r.calls = append(r.calls, c)
	var vals []float64
	switch c.Kind {
	case uniform.Float32:
		for _, v := range c.Float32s() {
			vals = append(vals, float64(v))
		}
	case uniform.Float64:
		vals = append(vals, c.Float64s()...)
	case uniform.Int32:
		for _, v := range c.Int32s() {
			vals = append(vals, float64(v))
		}
	case uniform.Uint32:
		for _, v := range c.Uint32s() {
			vals = append(vals, float64(v))
		}
	}
	r.data = append(r.data, vals)

	return nil
}

func (r *recorder) last(t *testing.T) (uniform.Call, []float64) {
	t.Helper()
	require.NotEmpty(t, r.calls)

	return r.calls[len(r.calls)-1], r.data[len(r.data)-1]
}

func TestSend_Mat4(t *testing.T) {
	rec := &recorder{}
	m := matrix.Identity[matrix.D4, float32]()
	m.Set(0, 3, 5)

	require.NoError(t, uniform.Send(rec, 3, &m))
	c, data := rec.last(t)
	require.Equal(t, int32(3), c.Location)
	require.Equal(t, uniform.Mat4, c.Target)
	require.Equal(t, uniform.Float32, c.Kind)
	require.Equal(t, int32(1), c.Count)
	require.True(t, c.Transpose)
	require.Equal(t, 4, c.Rows)
	require.Equal(t, 4, c.Cols)
	require.Equal(t, "UniformMatrix4fv", c.Target.Func(c.Kind))

	// the call points at the matrix's own column-major storage
	require.Same(t, &m.Raw()[0], &c.Float32s()[0])
	require.Equal(t, 5.0, data[12])
	require.Nil(t, c.Float64s())
}

func TestSend_Shapes(t *testing.T) {
	rec := &recorder{}

	m23 := matrix.Mat2x3FromArray([3][2]float64{{1, 4}, {2, 5}, {3, 6}})
	require.NoError(t, uniform.Send(rec, 0, &m23))
	c, data := rec.last(t)
	require.Equal(t, uniform.Mat2x3, c.Target)
	require.Equal(t, "UniformMatrix2x3dv", c.Target.Func(c.Kind))
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, data)

	col := matrix.SMat[matrix.D3, matrix.D1, int32](matrix.NewVec3[int32](-1, 0, 1))
	require.NoError(t, uniform.Send(rec, 1, &col))
	c, data = rec.last(t)
	require.Equal(t, uniform.Vec3, c.Target)
	require.Equal(t, "Uniform3iv", c.Target.Func(c.Kind))
	require.Equal(t, 3, c.Rows)
	require.Equal(t, 1, c.Cols)
	require.Equal(t, []float64{-1, 0, 1}, data)

	row := matrix.New[matrix.D1, matrix.D4, uint32]([]uint32{1}, []uint32{2}, []uint32{3}, []uint32{4})
	require.NoError(t, uniform.Send(rec, 2, &row))
	c, data = rec.last(t)
	require.Equal(t, uniform.Vec4, c.Target)
	require.Equal(t, "Uniform4uiv", c.Target.Func(c.Kind))
	require.Equal(t, []float64{1, 2, 3, 4}, data)

	require.NoError(t, uniform.SendScalar(rec, 9, float32(2.5)))
	c, data = rec.last(t)
	require.Equal(t, uniform.Scalar, c.Target)
	require.Equal(t, "Uniform1f", c.Target.Func(c.Kind))
	require.Equal(t, []float64{2.5}, data)

	d, err := matrix.DMatFromRows([]float32{1, 2, 3, 4})
	require.NoError(t, err)
	require.NoError(t, uniform.SendDense(rec, 4, d))
	c, _ = rec.last(t)
	require.Equal(t, uniform.Vec4, c.Target)
	require.Same(t, &d.Raw()[0], &c.Float32s()[0])
}

func TestSend_Rejects(t *testing.T) {
	called := false
	s := uniform.SenderFunc(func(uniform.Call) error {
		called = true
		return nil
	})

	im := matrix.Identity[matrix.D3, int32]()
	require.ErrorIs(t, uniform.Send(s, 0, &im), uniform.ErrUnsupportedKind)

	gm := matrix.Identity[matrix.D2, int]()
	require.ErrorIs(t, uniform.Send(s, 0, &gm), uniform.ErrUnsupportedKind)

	big, err := matrix.IdentityDMat[float32](5)
	require.NoError(t, err)
	require.ErrorIs(t, uniform.SendDense(s, 0, big), uniform.ErrUnsupportedShape)
	require.ErrorIs(t, uniform.SendDense[float32](s, 0, nil), uniform.ErrUnsupportedShape)

	require.False(t, called, "rejected values never reach the sender")

	require.PanicsWithError(t, "Resolve(3,3,int32): uniform: unsupported element kind", func() {
		uniform.MustSend(s, 0, &im)
	})
	require.PanicsWithError(t, "Resolve(5,5,float32): uniform: unsupported shape", func() {
		uniform.MustSendDense(s, 0, big)
	})
}

func TestSend_Options(t *testing.T) {
	rec := &recorder{}
	m := matrix.Identity[matrix.D2, float32]()

	require.NoError(t, uniform.Send(rec, 2, &m, uniform.WithTranspose(false), uniform.WithLocationOffset(16)))
	c, _ := rec.last(t)
	require.False(t, c.Transpose)
	require.Equal(t, int32(18), c.Location)

	require.PanicsWithValue(t, "uniform: WithLocationOffset: offset must be >= 0", func() {
		uniform.WithLocationOffset(-1)
	})
	require.PanicsWithValue(t, "uniform: WithLayout: unknown layout", func() {
		uniform.WithLayout(uniform.Layout(7))
	})
}

func TestSend_SenderError(t *testing.T) {
	errBoom := errors.New("boom")
	s := uniform.SenderFunc(func(uniform.Call) error { return errBoom })
	v := matrix.NewVec2[float32](1, 2).Mat()

	require.ErrorIs(t, uniform.Send(s, 0, &v), errBoom)
	require.PanicsWithError(t, "boom", func() { uniform.MustSend(s, 0, &v) })
}
