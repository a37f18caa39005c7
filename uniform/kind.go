// SPDX-License-Identifier: MIT

package uniform

import (
	"fmt"
	"strconv"
)

// Kind is the element type of a uniform value.
type Kind uint8

const (
	// Float32 maps to the "f" entry points.
	Float32 Kind = iota + 1
	// Float64 maps to the "d" entry points.
	Float64
	// Int32 maps to the "i" entry points (scalars and vectors only).
	Int32
	// Uint32 maps to the "ui" entry points (scalars and vectors only).
	Uint32
)

var kindInfo = [...]struct {
	name   string
	suffix string
	size   int
}{
	Float32: {"float32", "f", 4},
	Float64: {"float64", "d", 8},
	Int32:   {"int32", "i", 4},
	Uint32:  {"uint32", "ui", 4},
}

func (k Kind) valid() bool { return k >= Float32 && k <= Uint32 }

// IsFloat reports whether k is Float32 or Float64.
func (k Kind) IsFloat() bool { return k == Float32 || k == Float64 }

// Size is the width of one element in bytes, 0 for an invalid kind.
func (k Kind) Size() int {
	if !k.valid() {
		return 0
	}

	return kindInfo[k].size
}

func (k Kind) String() string {
	if !k.valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindInfo[k].name
}

// kindOf maps the element type parameter to a Kind. Named types over the four
// supported element types are not recognised.
func kindOf[T any]() Kind {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case uint32:
		return Uint32
	default:
		return 0
	}
}

// Target identifies the uniform entry-point family a value is sent through.
type Target uint8

// Targets. MatRxC is the shape of the matrix being sent: R rows, C columns.
const (
	NoTarget Target = iota
	Scalar
	Vec2
	Vec3
	Vec4
	Mat2
	Mat3
	Mat4
	Mat2x3
	Mat2x4
	Mat3x2
	Mat3x4
	Mat4x2
	Mat4x3
)

var targetInfo = [...]struct {
	name       string
	rows, cols int
}{
	NoTarget: {"NoTarget", 0, 0},
	Scalar:   {"Scalar", 1, 1},
	Vec2:     {"Vec2", 1, 2},
	Vec3:     {"Vec3", 1, 3},
	Vec4:     {"Vec4", 1, 4},
	Mat2:     {"Mat2", 2, 2},
	Mat3:     {"Mat3", 3, 3},
	Mat4:     {"Mat4", 4, 4},
	Mat2x3:   {"Mat2x3", 2, 3},
	Mat2x4:   {"Mat2x4", 2, 4},
	Mat3x2:   {"Mat3x2", 3, 2},
	Mat3x4:   {"Mat3x4", 3, 4},
	Mat4x2:   {"Mat4x2", 4, 2},
	Mat4x3:   {"Mat4x3", 4, 3},
}

// matTargets[r][c] for 2 <= r, c <= 4.
var matTargets = [5][5]Target{
	2: {2: Mat2, 3: Mat2x3, 4: Mat2x4},
	3: {2: Mat3x2, 3: Mat3, 4: Mat3x4},
	4: {2: Mat4x2, 3: Mat4x3, 4: Mat4},
}

var vecTargets = [5]Target{1: Scalar, 2: Vec2, 3: Vec3, 4: Vec4}

func (t Target) valid() bool { return t >= Scalar && t <= Mat4x3 }

// IsMatrix reports whether t uses a UniformMatrix entry point.
func (t Target) IsMatrix() bool { return t >= Mat2 && t <= Mat4x3 }

// Len is the number of elements one value of t carries.
func (t Target) Len() int {
	if !t.valid() {
		return 0
	}

	return targetInfo[t].rows * targetInfo[t].cols
}

func (t Target) String() string {
	if int(t) >= len(targetInfo) {
		return "Target(" + strconv.Itoa(int(t)) + ")"
	}

	return targetInfo[t].name
}

// Func returns the name of the uniform entry point for t and k, for example
// "Uniform1f", "Uniform3iv", "UniformMatrix4fv" or "UniformMatrix2x3dv".
// It returns "" when no entry point exists (integer matrices, invalid values).
func (t Target) Func(k Kind) string {
	if !t.valid() || !k.valid() {
		return ""
	}
	suffix := kindInfo[k].suffix
	info := targetInfo[t]
	switch {
	case t == Scalar:
		return "Uniform1" + suffix
	case !t.IsMatrix():
		return "Uniform" + strconv.Itoa(info.cols) + suffix + "v"
	case !k.IsFloat():
		return ""
	case info.rows == info.cols:
		return "UniformMatrix" + strconv.Itoa(info.rows) + suffix + "v"
	default:
		return fmt.Sprintf("UniformMatrix%dx%d%sv", info.rows, info.cols, suffix)
	}
}

// Resolve maps a rows×cols value of kind k to its Target.
//
// Row vectors 1×2…1×4 and column vectors 2×1…4×1 resolve to Vec2…Vec4 (their
// memory is identical), 1×1 resolves to Scalar, and 2×2…4×4 resolve to the
// matrix targets for float kinds.
//
// Errors:
//   - ErrUnsupportedKind: invalid k, or an integer kind with a matrix shape.
//   - ErrUnsupportedShape: any other shape.
func Resolve(rows, cols int, k Kind) (Target, error) {
	if !k.valid() {
		return NoTarget, fmt.Errorf("Resolve(%d,%d,%s): %w", rows, cols, k, ErrUnsupportedKind)
	}
	if rows < 1 || cols < 1 || rows > 4 || cols > 4 {
		return NoTarget, fmt.Errorf("Resolve(%d,%d,%s): %w", rows, cols, k, ErrUnsupportedShape)
	}
	if rows == 1 || cols == 1 {
		return vecTargets[rows*cols], nil
	}
	if !k.IsFloat() {
		return NoTarget, fmt.Errorf("Resolve(%d,%d,%s): %w", rows, cols, k, ErrUnsupportedKind)
	}

	return matTargets[rows][cols], nil
}
