// SPDX-License-Identifier: MIT

// Package uniform hands matrices and vectors to a shader-uniform API.
//
// ✨ Key features:
//   - Resolve: the dispatch table from a matrix shape and element kind to the
//     uniform entry point (Uniform3fv, UniformMatrix2x3dv, …). Unsupported
//     shapes fail loudly with ErrUnsupportedShape.
//   - Send / SendDense: build a Call for an SMat or DMat and pass it to a
//     Sender. The matrix memory is handed over as is (column-major, count 1)
//     with the transpose flag set, overridable with WithTranspose.
//   - Block: a CPU Sender that lays calls out in a uniform buffer following
//     std140 or WGSL rules, ready to be uploaded by a GPU backend
//     (see uniform/webgpu).
//
// A GL binding plugs in through SenderFunc:
//
//	s := uniform.SenderFunc(func(c uniform.Call) error {
//		switch c.Target.Func(c.Kind) {
//		case "UniformMatrix4fv":
//			gl.UniformMatrix4fv(c.Location, c.Count, c.Transpose, &c.Float32s()[0])
//		// ...
//		}
//		return nil
//	})
//	err := uniform.Send(s, loc, &mvp)
package uniform
