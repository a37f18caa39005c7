// SPDX-License-Identifier: MIT

package uniform

import (
	"fmt"
	"unsafe"

	log "github.com/golang/glog"

	"github.com/katalvlaran/mats/matrix"
)

// Send resolves the shape and element kind of m and hands one Call to s.
// The call points into m's own storage; s must not retain it.
//
// Errors:
//   - ErrUnsupportedShape / ErrUnsupportedKind from Resolve.
//   - Whatever s.SendUniform returns.
func Send[R, C matrix.Dim, T matrix.Scalar](s Sender, location int32, m *matrix.SMat[R, C, T], opts ...Option) error {
	rows, cols := m.Shape()

	return send(s, location, rows, cols, kindOf[T](), unsafe.Pointer(&m.Raw()[0]), opts)
}

// SendDense is Send for a runtime-sized matrix.
func SendDense[T matrix.Scalar](s Sender, location int32, m *matrix.DMat[T], opts ...Option) error {
	if m == nil || m.Len() == 0 {
		return fmt.Errorf("SendDense: %w", ErrUnsupportedShape)
	}
	rows, cols := m.Shape()

	return send(s, location, rows, cols, kindOf[T](), unsafe.Pointer(&m.Raw()[0]), opts)
}

// SendScalar sends a single value through the Uniform1* entry points.
func SendScalar[T matrix.Scalar](s Sender, location int32, v T, opts ...Option) error {
	return send(s, location, 1, 1, kindOf[T](), unsafe.Pointer(&v), opts)
}

// MustSend is Send that panics on error.
func MustSend[R, C matrix.Dim, T matrix.Scalar](s Sender, location int32, m *matrix.SMat[R, C, T], opts ...Option) {
	if err := Send(s, location, m, opts...); err != nil {
		panic(err)
	}
}

// MustSendDense is SendDense that panics on error.
func MustSendDense[T matrix.Scalar](s Sender, location int32, m *matrix.DMat[T], opts ...Option) {
	if err := SendDense(s, location, m, opts...); err != nil {
		panic(err)
	}
}

func send(s Sender, location int32, rows, cols int, k Kind, ptr unsafe.Pointer, opts []Option) error {
	o := gatherOptions(opts...)
	target, err := Resolve(rows, cols, k)
	if err != nil {
		log.Errorf("uniform: rejected %dx%d value at location %d: %v", rows, cols, location, err)
		return err
	}

	c := Call{
		Location:  location + o.locationOffset,
		Target:    target,
		Kind:      k,
		Count:     1,
		Transpose: o.transpose,
		Rows:      rows,
		Cols:      cols,
		Ptr:       ptr,
	}
	log.V(2).Infof("uniform: %s location=%d transpose=%t", target.Func(k), c.Location, c.Transpose)

	return s.SendUniform(c)
}
