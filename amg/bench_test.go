// Package amg_test provides benchmarks for hierarchy construction and
// the V-cycle on Poisson grids of growing size.
package amg_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlamg/amg"
	"github.com/katalvlaran/lvlamg/gallery"
)

// sinks to defeat dead-code elimination
var (
	sinkH *amg.Hierarchy
	sinkE error
)

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for _, side := range []int{16, 32, 64} {
		b.Run(fmt.Sprintf("n=%d", side*side), func(b *testing.B) {
			a, err := gallery.Grid2D(side, side)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				h, nErr := amg.New(a)
				if nErr != nil {
					b.Fatal(nErr)
				}
				sinkH = h
			}
		})
	}
}

func BenchmarkCycle(b *testing.B) {
	b.ReportAllocs()
	for _, side := range []int{16, 32, 64} {
		b.Run(fmt.Sprintf("n=%d", side*side), func(b *testing.B) {
			a, err := gallery.Grid2D(side, side)
			if err != nil {
				b.Fatal(err)
			}
			h, err := amg.New(a, amg.WithCoarseSize(10))
			if err != nil {
				b.Fatal(err)
			}
			n := side * side
			rhs := make([]float64, n)
			for i := range rhs {
				rhs[i] = 1
			}
			x := make([]float64, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkE = h.Cycle(rhs, x)
			}
		})
	}
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, side := range []int{16, 32} { // limits it so that CI doesn't burn
		b.Run(fmt.Sprintf("n=%d", side*side), func(b *testing.B) {
			a, err := gallery.Grid2D(side, side)
			if err != nil {
				b.Fatal(err)
			}
			h, err := amg.New(a, amg.WithCoarseSize(10))
			if err != nil {
				b.Fatal(err)
			}
			n := side * side
			rhs := make([]float64, n)
			for i := range rhs {
				rhs[i] = 1
			}
			x := make([]float64, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for j := range x {
					x[j] = 0
				}
				sinkE = h.Solve(rhs, x)
			}
		})
	}
}
