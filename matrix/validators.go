// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//  - Offer caller-side checks for count data: the normalizers themselves never
//    validate content, so a pipeline that wants to reject negative counts or
//    flag empty samples does so with ValidateNonNegative and ZeroColumns.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; only ZeroColumns allocates.

package matrix

import (
	"fmt"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// A typed nil *Dense stored in the interface is also rejected.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateNonNegative reports the first negative entry in row-major order.
// NaN is not negative and passes; pair with ReplaceInfNaN if needed.
//
// Errors: ErrNilMatrix; ErrNegative wrapped with the offending coordinates.
// Complexity: O(r*c), early exit.
func ValidateNonNegative(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNonNegative", err)
	}
	r, c := m.Rows(), m.Cols()

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				if d.data[base+j] < 0 {
					return validatorErrorf("ValidateNonNegative", denseErrorf(ctxAt, i, j, ErrNegative))
				}
			}
		}
		return nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateNonNegative", err)
			}
			if v < 0 {
				return validatorErrorf("ValidateNonNegative", denseErrorf(ctxAt, i, j, ErrNegative))
			}
		}
	}

	return nil
}

// ZeroColumns returns the indices (ascending) of columns whose total is
// exactly zero. Those are the samples a per-column normalization maps to NaN.
// Returns an empty, non-nil slice when there are none.
//
// Errors: ErrNilMatrix; wrapped At errors from the fallback path.
// Complexity: O(r*c) time, O(c) space.
func ZeroColumns(m Matrix) ([]int, error) {
	sums, err := colSums(m)
	if err != nil {
		return nil, validatorErrorf("ZeroColumns", err)
	}
	out := make([]int, 0)
	for j, s := range sums {
		if s == 0 {
			out = append(out, j)
		}
	}

	return out, nil
}
