// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column reduction that per-sample normalizations divide by.
//
// Exposed API (see api.go):
//   - ColSums(X) -> sums  // sums[j] = Σ_i X[i,j]
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops: column j is always
//     accumulated in ascending row order, so totals are bitwise reproducible.
//   - Dense fast-paths avoid At and operate on row-major flat buffers.
//   - Zero-size matrices (0×N or N×0) return zero-filled sums of the right length.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock flat-slice fast paths.
//   - Sums propagate NaN/Inf; sanitize with ReplaceInfNaN first if that is undesired.

package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const opColSums = "ColSums"

// colSums accumulates every column of X.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Accumulate row by row into sums[j] (Dense fast-path; At fallback).
//
// Returns:
//   - []float64: column totals (len = Cols(X)).
//
// Errors:
//   - ErrNilMatrix from validation.
//   - Wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func colSums(X Matrix) ([]float64, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}

	r, c := X.Rows(), X.Cols()
	sums := make([]float64, c) // always return correct length for callers

	var i, j int
	// Stage 2 (Execute): Dense fast-path uses the row-major flat buffer directly.
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ { // deterministic row order
			base := i * c           // cache row base offset
			for j = 0; j < c; j++ { // deterministic column order
				sums[j] += d.data[base+j]
			}
		}
		return sums, nil
	}

	// Stage 2 (Execute fallback): use At(i,j) with full error propagation.
	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err = X.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opColSums, err)
			}
			sums[j] += v
		}
	}

	return sums, nil
}
