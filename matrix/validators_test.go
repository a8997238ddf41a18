// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aastha-ghub/PCA-for-house-price-dataset/matrix"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}
	var nilDense *matrix.Dense

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"typed nil", nilDense, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateShapes covers the square, product and vector-length checks.
func TestValidateShapes(t *testing.T) {
	t.Parallel()

	sq := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	wide := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(wide), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateMulCompatible(sq, wide))
	require.ErrorIs(t, matrix.ValidateMulCompatible(wide, sq), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}

// TestValidateFinite reports the first NaN or Inf on both access paths.
func TestValidateFinite(t *testing.T) {
	t.Parallel()

	ok := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, matrix.ValidateFinite(ok))
	require.NoError(t, matrix.ValidateFinite(hide{ok}))

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		m := NewFilledDense(t, 2, 2, []float64{1, 2, bad, 4})
		err := matrix.ValidateFinite(m)
		require.ErrorIs(t, err, matrix.ErrNaNInf)
		require.Contains(t, err.Error(), "(1,0)")
		require.ErrorIs(t, matrix.ValidateFinite(hide{m}), matrix.ErrNaNInf)
	}
}

// TestValidateSymmetric covers tolerance handling and structural failures.
func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 2 + 1e-10, 1})
	require.ErrorIs(t, matrix.ValidateSymmetric(m, 0), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(m, 1e-9))
	require.NoError(t, matrix.ValidateSymmetric(m, -1e-9), "negative tolerance is mirrored")
	require.ErrorIs(t, matrix.ValidateSymmetric(m, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSymmetric(NewFilledDense(t, 1, 2, []float64{1, 2}), 0), matrix.ErrNonSquare)
}
