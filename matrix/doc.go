// Package matrix offers dense float64 storage and the small set of kernels
// the normalizers are built from.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix over a flat []float64 (offset = i*cols + j)
//     with bounds-checked At/Set and an optional NaN/Inf numeric policy.
//   - A column reduction (ColSums) with a fixed i→j accumulation order, so
//     every call over the same data produces bitwise-identical totals.
//   - Sanitizers and comparisons (ReplaceInfNaN, AllClose).
//   - Caller-side validators for count data (ValidateNonNegative, ZeroColumns).
//   - Interop with gonum's mat package (FromGonum, Dense.ToGonum).
//
// Zero-sized shapes (0×0, r×0, 0×c) are legal everywhere and behave as no-ops.
//
// See the examples in this package and in normalize for usage patterns.
package matrix
