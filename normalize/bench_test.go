// Package normalize_test provides benchmarks for the normalizers,
// using deterministic random counts.
package normalize_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/exprnorm/matrix"
	"github.com/katalvlaran/exprnorm/normalize"
)

// benchShapes are genes × samples, roughly bulk RNA-seq sized.
var benchShapes = [][2]int{{2000, 12}, {20000, 48}}

// sink to defeat dead-code elimination
var sinkM *matrix.Dense

func benchmarkTransform(b *testing.B, workers int, log bool) {
	b.ReportAllocs()
	for _, s := range benchShapes {
		b.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(b *testing.B) {
			M := randCounts(b, s[0], s[1], 1337, -1)
			n := normalize.New(normalize.WithWorkers(workers))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var out *matrix.Dense
				var err error
				if log {
					out, err = n.Log2CPM(M)
				} else {
					out, err = n.CPM(M)
				}
				if err != nil {
					b.Fatal(err)
				}
				sinkM = out
			}
		})
	}
}

func BenchmarkCPM(b *testing.B)             { benchmarkTransform(b, 1, false) }
func BenchmarkCPMParallel(b *testing.B)     { benchmarkTransform(b, 0, false) }
func BenchmarkLog2CPM(b *testing.B)         { benchmarkTransform(b, 1, true) }
func BenchmarkLog2CPMParallel(b *testing.B) { benchmarkTransform(b, 0, true) }
