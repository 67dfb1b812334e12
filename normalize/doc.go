// SPDX-License-Identifier: MIT

// Package normalize scales gene-expression counts per sample.
//
// What & Why:
//
//	Read counts are not comparable across samples sequenced to different
//	depths. Dividing every count by its sample (column) total and scaling by
//	one million yields counts-per-million (CPM); log2(CPM+1) compresses the
//	dynamic range while mapping zero counts to zero.
//
// Operations:
//
//	CPM(counts)     out[i,j] = counts[i,j] / Σ_k counts[k,j] * 1e6
//	Log2CPM(counts) out[i,j] = log2(CPM[i,j] + 1)
//	ColumnSums      the shared per-column reduction
//
// Numeric contract:
//
//   - IEEE-754 arithmetic only. Counts are not validated: negatives produce
//     well-defined but meaningless values (use matrix.ValidateNonNegative first).
//   - A column whose total is zero comes back as NaN in every cell (0/0), for
//     both transforms; the pseudocount does not rescue a zero denominator.
//   - Log2CPM(M)[i,j] is bit-for-bit log2(CPM(M)[i,j] + 1).
//   - Output is a fresh *matrix.Dense of the input's shape; empty inputs give
//     empty outputs. The input is never mutated or retained.
//
// Errors are returned only for misuse (nil matrix, a custom Matrix whose At
// fails, an unknown method name), never for the numeric content.
//
// Concurrency:
//
//	WithWorkers(n) splits the scaling pass over disjoint row blocks using an
//	errgroup. Column totals are computed once beforehand, so parallel output
//	is bitwise identical to the serial one.
//
// Complexity:
//
//	Time O(r*c), Space O(r*c) for the output plus O(c) for the totals.
package normalize
