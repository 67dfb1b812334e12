// SPDX-License-Identifier: MIT

package normalize_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/exprnorm/matrix"
	"github.com/stretchr/testify/require"
)

// hide masks *matrix.Dense so the normalizers take the generic At path.
type hide struct{ matrix.Matrix }

var errBoom = errors.New("boom")

// broken fails every At call.
type broken struct{ matrix.Matrix }

func (broken) At(int, int) (float64, error) { return 0, errBoom }

func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func mustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// randCounts builds an r×c matrix of deterministic counts in [0, 5000);
// zeroCol >= 0 forces that column to all zeros.
func randCounts(t testing.TB, r, c int, seed int64, zeroCol int) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		row := m.RawRowView(i)
		for j := range row {
			if j != zeroCol {
				row[j] = float64(rng.Intn(5000))
			}
		}
	}

	return m
}

// requireSameBits asserts a and b are bitwise equal, NaN payloads included.
func requireSameBits(t testing.TB, a, b matrix.Matrix) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows())
	require.Equal(t, a.Cols(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, bv := mustAt(t, a, i, j), mustAt(t, b, i, j)
			require.Equal(t, math.Float64bits(av), math.Float64bits(bv), "cell (%d,%d): %v vs %v", i, j, av, bv)
		}
	}
}
