// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/exprnorm/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// ------------------------------
// ColSums
// ------------------------------

func TestColSums_SmallAndFallback(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 10, 20, 30})

	fast, err := matrix.ColSums(X)
	require.NoError(t, err)
	slow, err := matrix.ColSums(hide{X})
	require.NoError(t, err)

	assert.Equal(t, []float64{11, 22, 33}, fast)
	assert.Equal(t, fast, slow)
}

func TestColSums_MatchesGonumFloats(t *testing.T) {
	t.Parallel()

	X := randCounts(t, 50, 7, 1337)
	sums, err := matrix.ColSums(X)
	require.NoError(t, err)

	col := make([]float64, X.Rows())
	for j := 0; j < X.Cols(); j++ {
		for i := range col {
			col[i] = MustAt(t, X, i, j)
		}
		// Integer-valued counts sum exactly regardless of order.
		assert.Equal(t, floats.Sum(col), sums[j], "column %d", j)
	}
}

func TestColSums_ZeroSizeSafe(t *testing.T) {
	t.Parallel()

	X1, err := matrix.NewDense(0, 3)
	require.NoError(t, err)
	cs, err := matrix.ColSums(X1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, cs)

	X2, err := matrix.NewDense(2, 0)
	require.NoError(t, err)
	cs, err = matrix.ColSums(X2)
	require.NoError(t, err)
	assert.Empty(t, cs)
}

func TestColSums_PropagatesNaN(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 2, []float64{math.NaN(), 1, 2, 3})
	cs, err := matrix.ColSums(X)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(cs[0]))
	assert.Equal(t, 4.0, cs[1])
}

func TestColSums_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.ColSums(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.ColSums(typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	X := NewFilledDense(t, 1, 1, []float64{1})
	_, err = matrix.ColSums(broken{X})
	require.ErrorIs(t, err, errBoom)
}
