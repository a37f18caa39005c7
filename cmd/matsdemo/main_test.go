// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mats/matrix"
)

func TestParseMatrix(t *testing.T) {
	m, err := parseMatrix(" 1, 2 ; 3,4.5 ")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 3}, {2, 4.5}}, m.Columns())

	_, err = parseMatrix("")
	require.ErrorIs(t, err, errEmptyInput)

	_, err = parseMatrix("1,x")
	require.ErrorContains(t, err, "cell (0,1)")

	_, err = parseMatrix("1,2;3")
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		op    string
		input string
		want  string
	}{
		{"det", "det", "1,2;3,4", "-2\n"},
		{"rank", "rank", "1,2,3;4,5,6;7,8,9", "2\n"},
		{"singular inverse", "inverse", "1,2;2,4", "singular\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := parseMatrix(tc.input)
			require.NoError(t, err)
			var buf bytes.Buffer
			require.NoError(t, run(&buf, tc.op, m))
			require.Equal(t, tc.want, buf.String())
		})
	}
}

func TestRun_Render(t *testing.T) {
	m, err := parseMatrix("1,2,3;4,5,6")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, run(&buf, "transpose", m, matrix.WithCellWidth(3)))
	require.Equal(t, "Mat<float64>(3, 2) {\n|  1  4  |\n|  2  5  |\n|  3  6  |\n}\n", buf.String())

	m, err = parseMatrix("4,7;2,6")
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, run(&buf, "inverse", m, matrix.WithPrecision(1), matrix.WithCellWidth(6)))
	require.Equal(t, "Mat<float64>(2, 2) {\n|  0.6   -0.7  |\n|  -0.2  0.4   |\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, run(&buf, "lu", m))
	require.Equal(t, 2, strings.Count(buf.String(), "Mat<float64>(2, 2) {"))
}

func TestRun_Errors(t *testing.T) {
	m, err := parseMatrix("1,2,3;4,5,6")
	require.NoError(t, err)

	require.ErrorIs(t, run(&bytes.Buffer{}, "det", m), matrix.ErrNonSquare)
	require.ErrorIs(t, run(&bytes.Buffer{}, "lu", m), matrix.ErrNonSquare)
	require.ErrorIs(t, run(&bytes.Buffer{}, "inverse", m), matrix.ErrNonSquare)
	require.ErrorIs(t, run(&bytes.Buffer{}, "eigen", m), errUnknownOp)
}
