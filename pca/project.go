// SPDX-License-Identifier: MIT

package pca

import (
	"github.com/aastha-ghub/PCA-for-house-price-dataset/matrix"
)

const (
	opProject             = "Project"
	opReconstruct         = "Reconstruct"
	opReconstructionError = "ReconstructionError"
)

// Project maps standardized observations onto the loading matrix: Z·W.
// Z is n×p, W is p×k; the result is n×k and row i holds the scores of
// observation i, in component order.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (Z.Cols != W.Rows).
func Project(Z, W matrix.Matrix) (*matrix.Dense, error) {
	scores, err := matrix.Mul(Z, W)
	if err != nil {
		return nil, pcaErrorf(opProject, err)
	}

	return scores, nil
}

// Reconstruct maps scores back into standardized feature space: scores·Wᵀ.
// With k = p this recovers Z up to rounding; with k < p it is the best rank-k
// approximation in the least-squares sense.
func Reconstruct(scores, W matrix.Matrix) (*matrix.Dense, error) {
	Wt, err := matrix.Transpose(W)
	if err != nil {
		return nil, pcaErrorf(opReconstruct, err)
	}
	Z, err := matrix.Mul(scores, Wt)
	if err != nil {
		return nil, pcaErrorf(opReconstruct, err)
	}

	return Z, nil
}

// ReconstructionError returns ‖Z - scores·Wᵀ‖²_F / ‖Z‖²_F, the fraction of
// the standardized data's variance the kept components do not explain.
// For loadings taken from Z's own covariance it equals the dropped share of
// the eigenvalue sum.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrZeroVariance
// when Z is all zeros.
func ReconstructionError(Z, scores, W matrix.Matrix) (float64, error) {
	approx, err := Reconstruct(scores, W)
	if err != nil {
		return 0, pcaErrorf(opReconstructionError, err)
	}
	residual, err := matrix.Sub(Z, approx)
	if err != nil {
		return 0, pcaErrorf(opReconstructionError, err)
	}
	num, err := matrix.FrobeniusNorm(residual)
	if err != nil {
		return 0, pcaErrorf(opReconstructionError, err)
	}
	den, err := matrix.FrobeniusNorm(Z)
	if err != nil {
		return 0, pcaErrorf(opReconstructionError, err)
	}
	if den == 0 {
		return 0, pcaErrorf(opReconstructionError, ErrZeroVariance)
	}

	return (num * num) / (den * den), nil
}
