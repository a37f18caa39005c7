// SPDX-License-Identifier: MIT

// Command matsdemo runs one matrix algorithm on a matrix given on the
// command line and prints the result.
//
//	matsdemo -op=inverse -m="4,7;2,6" -precision=3
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/golang/glog"

	"github.com/katalvlaran/mats/matrix"
)

var (
	op        = flag.String("op", "det", "operation: det, inverse, rank, lu or transpose")
	input     = flag.String("m", "1,2;3,4", "matrix, rows separated by ';', cells by ','")
	precision = flag.Int("precision", matrix.DefaultPrecision, "digits after the decimal point, -1 for shortest")
	width     = flag.Int("width", matrix.DefaultCellWidth, "cell width")
)

var errUnknownOp = errors.New("matsdemo: unknown operation")

func main() {
	flag.Parse()
	defer log.Flush()

	m, err := parseMatrix(*input)
	if err != nil {
		log.Exitf("matsdemo: %v", err)
	}
	log.V(1).Infof("matsdemo: %s on a %dx%d matrix", *op, m.Rows(), m.Cols())

	opts := []matrix.Option{matrix.WithCellWidth(*width)}
	if *precision >= 0 {
		opts = append(opts, matrix.WithPrecision(*precision))
	}
	if err := run(os.Stdout, *op, m, opts...); err != nil {
		log.Exitf("matsdemo: %v", err)
	}
}

// run applies op to m and writes the result to w.
func run(w io.Writer, op string, m *matrix.DMat[float64], opts ...matrix.Option) error {
	switch op {
	case "det":
		d, err := m.Det()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%g\n", d)
	case "inverse":
		if !m.IsSquare() {
			return fmt.Errorf("Inverse: %w", matrix.ErrNonSquare)
		}
		inv, ok := matrix.InverseDMat(m)
		if !ok {
			log.Warningf("matsdemo: matrix is singular")
			fmt.Fprintln(w, "singular")
			return nil
		}
		fmt.Fprintln(w, inv.Render(opts...))
	case "rank":
		fmt.Fprintln(w, m.Rank())
	case "lu":
		l, u, err := m.LU()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, l.Render(opts...))
		fmt.Fprintln(w, u.Render(opts...))
	case "transpose":
		m.TransposeInPlace()
		fmt.Fprintln(w, m.Render(opts...))
	default:
		return fmt.Errorf("%w: %q", errUnknownOp, op)
	}

	return nil
}
