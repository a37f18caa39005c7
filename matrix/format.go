// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "| "
	_fmtRowClose = " |\n"
	_fmtClose    = "}"
)

// String renders m with the default options:
//
//	Mat<float32, 2, 2> {
//	|     1        2     |
//	|     3        4     |
//	}
func (m SMat[R, C, T]) String() string { return m.Render() }

// Render renders m like String with opts applied (WithCellWidth, WithPrecision).
func (m SMat[R, C, T]) Render(opts ...Option) string {
	rows, cols := m.Shape()
	var zero T
	header := fmt.Sprintf("Mat<%T, %d, %d> {\n", zero, rows, cols)

	return render(header, rows, cols, m.data[:], gatherOptions(opts...))
}

// String renders m with the default options; the header carries the runtime
// shape: "Mat<float64>(3, 2) {".
func (m *DMat[T]) String() string { return m.Render() }

// Render renders m like String with opts applied.
func (m *DMat[T]) Render(opts ...Option) string {
	var zero T
	header := fmt.Sprintf("Mat<%T>(%d, %d) {\n", zero, m.rows, m.cols)

	return render(header, m.rows, m.cols, m.data, gatherOptions(opts...))
}

// render writes one "| … |" line per row of the column-major buffer data.
func render[T Scalar](header string, rows, cols int, data []T, o Options) string {
	var b strings.Builder
	b.WriteString(header)
	var i, j int
	for i = 0; i < rows; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < cols; j++ {
			b.WriteString(center(formatCell(data[j*rows+i], o.precision), o.cellWidth))
		}
		b.WriteString(_fmtRowClose)
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// formatCell prints integers in base 10 and floats either shortest (%v) or
// with a fixed number of decimals.
func formatCell[T Scalar](v T, precision int) string {
	switch x := any(v).(type) {
	case float32:
		if precision >= 0 {
			return strconv.FormatFloat(float64(x), 'f', precision, 32)
		}
	case float64:
		if precision >= 0 {
			return strconv.FormatFloat(x, 'f', precision, 64)
		}
	}

	return fmt.Sprint(v)
}

// center pads s with spaces to width; an odd remainder goes to the right.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
