// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aastha-ghub/PCA-for-house-price-dataset/matrix"
)

// ---------- 1. Mul ----------

func TestMul_Succeeds(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})
	want := NewFilledDense(t, 2, 2, []float64{58, 64, 139, 154})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareClose(t, got, want, 0, 0)

	// Fallback path through a non-*Dense operand must agree bitwise.
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	CompareClose(t, slow, got, 0, 0)
}

func TestMul_Errors(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 3, 1, []float64{1, 2, 3})

	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var nilDense *matrix.Dense
	_, err = matrix.Mul(a, nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- 2. Transpose / Scale ----------

func TestTranspose(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	CompareClose(t, at, NewFilledDense(t, 3, 2, []float64{1, 4, 2, 5, 3, 6}), 0, 0)

	att, err := matrix.Transpose(hide{at})
	require.NoError(t, err)
	CompareClose(t, att, a, 0, 0)
}

func TestScale(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 1, 3, []float64{1, -2, 4})
	s, err := matrix.Scale(a, -0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{-0.5, 1, -2}, s.RawData())
	// operand untouched
	assert.Equal(t, []float64{1, -2, 4}, a.RawData())

	_, err = matrix.Scale(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- 3. MatVec ----------

func TestMatVec(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	y, err := matrix.MatVec(a, []float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	_, err = matrix.MatVec(a, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
