// Package matrix_test provides benchmarks for the reductions,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/exprnorm/matrix"
)

// benchShapes are the matrix sizes to benchmark (rows × cols).
var benchShapes = [][2]int{{1000, 16}, {20000, 48}}

// sinks to defeat dead-code elimination
var sinkV []float64

func BenchmarkColSums(b *testing.B) {
	b.ReportAllocs()
	for _, s := range benchShapes {
		b.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(b *testing.B) {
			M := randCounts(b, s[0], s[1], 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := matrix.ColSums(M)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkColSumsFallback(b *testing.B) {
	b.ReportAllocs()
	M := randCounts(b, 1000, 16, 4242)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := matrix.ColSums(hide{M})
		if err != nil {
			b.Fatal(err)
		}
		sinkV = v
	}
}
