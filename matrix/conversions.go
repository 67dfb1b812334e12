// SPDX-License-Identifier: MIT

// Package matrix provides converters between Dense and gonum's mat types,
// so a pipeline that already keeps its counts table in a *mat.Dense can feed
// it to the normalizers and take the result back without hand-written loops.
package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const (
	opFromGonum = "FromGonum"
	opToGonum   = "ToGonum"
)

// FromGonum copies any gonum matrix into a new *Dense.
// Stage 1 (Validate): reject a nil matrix.
// Stage 2 (Execute): stride-aware row copies for mat.RawMatrixer, At fallback otherwise.
// An empty *mat.Dense (zero value) becomes a 0×0 Dense.
// Complexity: O(r*c).
func FromGonum(a mat.Matrix, opts ...Option) (*Dense, error) {
	if a == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	if d, ok := a.(*mat.Dense); ok && (d == nil || d.IsEmpty()) {
		return NewDense(0, 0, opts...)
	}

	r, c := a.Dims()
	out, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	var i, j int
	if rm, ok := a.(mat.RawMatrixer); ok && !out.validateNaNInf {
		raw := rm.RawMatrix()
		for i = 0; i < r; i++ {
			copy(out.data[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}
		return out, nil
	}

	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, a.At(i, j)); err != nil {
				return nil, matrixErrorf(opFromGonum, err)
			}
		}
	}

	return out, nil
}

// ToGonum copies m into a new *mat.Dense.
// gonum cannot represent a zero dimension, so 0×N and N×0 return
// ErrInvalidDimensions instead of panicking inside mat.NewDense.
// Complexity: O(r*c).
func (m *Dense) ToGonum() (*mat.Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opToGonum, ErrNilMatrix)
	}
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf(opToGonum, ErrInvalidDimensions)
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf), nil
}
