// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the DMat and SMat kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mats/matrix"
)

// benchSizes are the DMat sizes to benchmark.
var benchSizes = []int{16, 64, 256}

// sinks to defeat dead-code elimination
var (
	sinkD *matrix.DMat[float64]
	sinkS matrix.Mat4[float64]
	sinkF float64
	sinkI int
	sinkB bool
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomDMat(b, n, n, 1337)
			B := RandomDMat(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Add(B)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = m
			}
		})
	}
}

func BenchmarkDot(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomDMat(b, n, n, 1)
			B := RandomDMat(b, n, n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Dot(B)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("copy_n=%d", n), func(b *testing.B) {
			A := RandomDMat(b, n, n+8, 7) // rectangular
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkD = A.Transpose()
			}
		})
		b.Run(fmt.Sprintf("inplace_n=%d", n), func(b *testing.B) {
			A := RandomDMat(b, n, n+8, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				A.TransposeInPlace()
			}
			sinkD = A
		})
	}
}

func BenchmarkLinearAlgebra(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("LU_n=%d", n), func(b *testing.B) {
			A := RandomDMat(b, n, n, 11)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, u, err := A.LU()
				if err != nil {
					b.Fatal(err)
				}
				sinkD = u
			}
		})
		b.Run(fmt.Sprintf("Det_n=%d", n), func(b *testing.B) {
			A := RandomDMat(b, n, n, 12)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := A.Det()
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
		b.Run(fmt.Sprintf("Inverse_n=%d", n), func(b *testing.B) {
			A := RandomDMat(b, n, n, 13)
			for k := 0; k < n; k++ {
				A.Set(k, k, A.At(k, k)+float64(n)) // diagonally dominant
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				inv, ok := matrix.InverseDMat(A)
				sinkD, sinkB = inv, ok
			}
		})
		b.Run(fmt.Sprintf("Rank_n=%d", n), func(b *testing.B) {
			A := RandomDMat(b, n, n, 14)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkI = A.Rank()
			}
		})
	}
}

func BenchmarkStatic(b *testing.B) {
	b.ReportAllocs()
	a := matrix.Identity[matrix.D4, float64]()
	a.Set(0, 3, 2)
	c := matrix.Identity[matrix.D4, float64]()
	c.Set(1, 2, -1)

	b.Run("Dot4", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkS = matrix.Dot(a, c)
		}
	})
	b.Run("Inverse4", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkS, sinkB = matrix.Inverse(a)
		}
	})
	b.Run("Det4", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkF = matrix.Det(a)
		}
	})
}
