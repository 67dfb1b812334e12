// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels and validators.
//   • Force the non-*Dense fallback paths with hide{} and broken{} wrappers.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/exprnorm/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions, so
// code under test takes the generic At/Set fallback instead of the *Dense fast path.
type hide struct{ matrix.Matrix }

// errBoom is returned by broken.At.
var errBoom = errors.New("boom")

// broken is a Matrix whose At always fails; used to check error propagation.
type broken struct{ matrix.Matrix }

func (broken) At(int, int) (float64, error) { return 0, errBoom }

// NewFilledDense allocates an r×c *Dense holding a copy of data or fails the test.
func NewFilledDense(t testing.TB, r, c int, data []float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return d
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// randCounts fills an r×c matrix with deterministic pseudo-random integer counts in [0, 1000).
func randCounts(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = float64(rng.Intn(1000))
	}

	return NewFilledDense(t, r, c, data)
}
