// SPDX-License-Identifier: MIT

package normalize

import (
	"math"

	"github.com/katalvlaran/exprnorm/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opCPM        = "CPM"
	opLog2CPM    = "Log2CPM"
	opColumnSums = "ColumnSums"
	opApply      = "Apply"
)

// Normalizer holds a resolved configuration. It carries no mutable state and
// is safe for concurrent use by multiple goroutines.
type Normalizer struct {
	opts Options
}

// New returns a Normalizer configured by opts on top of the defaults
// (scale 1e6, pseudocount 1, one worker).
func New(opts ...Option) *Normalizer {
	return &Normalizer{opts: gatherOptions(opts...)}
}

// Scale returns the configured library size.
func (n *Normalizer) Scale() float64 { return n.opts.scale }

// Pseudocount returns the value added before the logarithm.
func (n *Normalizer) Pseudocount() float64 { return n.opts.pseudocount }

// Workers returns the resolved worker count (always >= 1).
func (n *Normalizer) Workers() int { return n.opts.workers }

// cpm is the single definition of a CPM cell. The explicit float64
// conversion rounds the product so it can never be fused with a later add.
func (n *Normalizer) cpm(v, total float64) float64 {
	return float64(v / total * n.opts.scale)
}

func (n *Normalizer) log2cpm(v, total float64) float64 {
	return math.Log2(n.cpm(v, total) + n.opts.pseudocount)
}

// CPM returns counts-per-million: out[i,j] = counts[i,j] / Σ_k counts[k,j] * scale.
//
// Zero-total columns become NaN; empty inputs return an empty matrix of the
// same shape. The input is read only.
//
// Errors: wrapped matrix.ErrNilMatrix, or the At error of a custom Matrix.
// Complexity: O(r*c).
func (n *Normalizer) CPM(counts matrix.Matrix) (*matrix.Dense, error) {
	return n.transform(opCPM, counts, n.cpm)
}

// Log2CPM returns log2(CPM + pseudocount) for every cell.
//
// Uses the same column totals and cell arithmetic as CPM, so
// Log2CPM(M)[i,j] == math.Log2(CPM(M)[i,j]+pseudocount) exactly.
// Zero-total columns stay NaN.
//
// Errors: wrapped matrix.ErrNilMatrix, or the At error of a custom Matrix.
// Complexity: O(r*c).
func (n *Normalizer) Log2CPM(counts matrix.Matrix) (*matrix.Dense, error) {
	return n.transform(opLog2CPM, counts, n.log2cpm)
}

// Apply dispatches to CPM or Log2CPM by method.
// Errors: ErrUnknownMethod for any other value, plus the errors of the target.
func (n *Normalizer) Apply(method Method, counts matrix.Matrix) (*matrix.Dense, error) {
	switch method {
	case MethodCPM:
		return n.CPM(counts)
	case MethodLog2CPM:
		return n.Log2CPM(counts)
	default:
		return nil, normalizeErrorf(opApply, ErrUnknownMethod)
	}
}

// CPM normalizes counts with a Normalizer built from opts.
// See Normalizer.CPM.
func CPM(counts matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	return New(opts...).CPM(counts)
}

// Log2CPM log-normalizes counts with a Normalizer built from opts.
// See Normalizer.Log2CPM.
func Log2CPM(counts matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	return New(opts...).Log2CPM(counts)
}

// ColumnSums returns the per-sample totals both transforms divide by.
// len(result) == counts.Cols(); a zero entry marks a column that normalizes to NaN.
func ColumnSums(counts matrix.Matrix) ([]float64, error) {
	sums, err := matrix.ColSums(counts)
	if err != nil {
		return nil, normalizeErrorf(opColumnSums, err)
	}

	return sums, nil
}
