// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/mats/matrix"
)

var errEmptyInput = errors.New("matsdemo: empty matrix")

// parseMatrix reads rows separated by ';' and cells separated by ','.
// "1,2;3,4" is the 2×2 matrix with first row (1, 2).
func parseMatrix(s string) (*matrix.DMat[float64], error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errEmptyInput
	}
	var rows [][]float64
	for i, line := range strings.Split(s, ";") {
		fields := strings.Split(line, ",")
		row := make([]float64, 0, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("matsdemo: cell (%d,%d): %w", i, j, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return matrix.DMatFromRows(rows...)
}
