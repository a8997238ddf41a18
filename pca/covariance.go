// SPDX-License-Identifier: MIT

package pca

import (
	"github.com/aastha-ghub/PCA-for-house-price-dataset/matrix"
)

const opCovariance = "Covariance"

// Covariance returns the p×p sample covariance of the columns of Z:
// C[i,j] = Σ_r (Z[r,i]-μ_i)(Z[r,j]-μ_j) / (n-1).
// The result is exactly symmetric and positive semi-definite up to rounding.
// For standardized input the diagonal is (n-ddof)/(n-1), i.e. ≈1.
//
// Errors: matrix.ErrNilMatrix, ErrInsufficientSamples (n ≤ 1).
func Covariance(Z matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(Z); err != nil {
		return nil, pcaErrorf(opCovariance, err)
	}
	if Z.Rows() <= 1 {
		return nil, pcaErrorf(opCovariance, ErrInsufficientSamples)
	}
	C, _, err := matrix.Covariance(Z)
	if err != nil {
		return nil, pcaErrorf(opCovariance, err)
	}

	return C, nil
}
