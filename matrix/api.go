// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Reductions ----------

// ColSums returns vector s where s[j] = Σ_i m[i,j], accumulated in ascending
// row order. len(s) == m.Cols(), including for zero-row matrices (all zeros).
// Complexity: O(rc).
//
// AI-Hints: the denominator of every per-sample (per-column) normalization.
func ColSums(m Matrix) ([]float64, error) { return colSums(m) }

// ---------- Sanitization & numeric compare (thin wrappers → ew*) ----------

// ReplaceInfNaN returns a copy of m where any {±Inf, NaN} are replaced by 'val' (finite).
// Time: O(r*c). Space: O(r*c). Deterministic.
//
// Policy: 'val' must be finite; otherwise ErrNaNInf is returned.
// AI-Hints:
//   - Turns the NaN columns of zero-total samples into a chosen value once the
//     caller has decided how to treat them.
func ReplaceInfNaN(m Matrix, val float64) (Matrix, error) {
	return ewReplaceInfNaN(m, val)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf. Deterministic.
// Time: O(r*c). Space: O(1).
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
