// Package exprnorm normalizes gene-expression count matrices.
//
// What is inside:
//
//	• matrix/    dense row-major float64 storage, column/row sums,
//	             element-wise kernels, validators and gonum interop
//	• normalize/ counts-per-million (CPM) and log2(CPM+1) transforms
//
// A counts matrix holds genes in rows and samples in columns. Each sample is
// scaled by its own total so that samples of different sequencing depth become
// comparable:
//
//	cpm[i,j]     = counts[i,j] / Σ_k counts[k,j] * 1e6
//	log2cpm[i,j] = log2(cpm[i,j] + 1)
//
// A sample whose total is zero has no meaningful scale; its column comes back
// as NaN so the problem stays visible downstream.
//
// Quick example:
//
//	counts, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	cpm, _ := normalize.CPM(counts)      // [[250000 333333.33] [750000 666666.67]]
//	logc, _ := normalize.Log2CPM(counts) // log2(cpm + 1)
//
// Pure Go, deterministic, no I/O.
//
//	go get github.com/katalvlaran/exprnorm
package exprnorm
