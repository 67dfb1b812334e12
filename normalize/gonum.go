// SPDX-License-Identifier: MIT

package normalize

import (
	"github.com/katalvlaran/exprnorm/matrix"
	"gonum.org/v1/gonum/mat"
)

// CPMMat is CPM for callers holding their counts in a gonum matrix.
// An empty *mat.Dense yields an empty *mat.Dense.
func CPMMat(counts mat.Matrix, opts ...Option) (*mat.Dense, error) {
	return New(opts...).viaGonum(opCPM, counts, MethodCPM)
}

// Log2CPMMat is Log2CPM for callers holding their counts in a gonum matrix.
func Log2CPMMat(counts mat.Matrix, opts ...Option) (*mat.Dense, error) {
	return New(opts...).viaGonum(opLog2CPM, counts, MethodLog2CPM)
}

// viaGonum copies counts into a Dense, runs the method and copies back.
func (n *Normalizer) viaGonum(op string, counts mat.Matrix, method Method) (*mat.Dense, error) {
	in, err := matrix.FromGonum(counts)
	if err != nil {
		return nil, normalizeErrorf(op, err)
	}
	out, err := n.Apply(method, in)
	if err != nil {
		return nil, err
	}
	if out.Rows() == 0 || out.Cols() == 0 {
		return &mat.Dense{}, nil
	}
	res, err := out.ToGonum()
	if err != nil {
		return nil, normalizeErrorf(op, err)
	}

	return res, nil
}
