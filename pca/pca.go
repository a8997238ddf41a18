// SPDX-License-Identifier: MIT

package pca

import (
	"gonum.org/v1/gonum/floats"

	"github.com/aastha-ghub/PCA-for-house-price-dataset/matrix"
)

const (
	opFitTransform    = "FitTransform"
	opResultTransform = "Result.Transform"
)

// Result is the outcome of FitTransform.
type Result struct {
	// Components holds the n×k projected scores.
	Components *matrix.Dense
	// Loadings is the p×k matrix of kept eigenvectors, column j for component j.
	Loadings *matrix.Dense
	// Eigenvalues lists all p covariance eigenvalues in descending order.
	Eigenvalues []float64
	// ExplainedVarianceRatio is λ_j / Σλ for the k kept components.
	ExplainedVarianceRatio []float64
	// CumulativeVarianceRatio is the running sum of ExplainedVarianceRatio.
	CumulativeVarianceRatio []float64
	// Scaler carries the fitted column statistics.
	Scaler *Scaler
	// Policy describes the selection rule that chose k.
	Policy string
}

// K returns the number of kept components.
func (r *Result) K() int { return len(r.ExplainedVarianceRatio) }

// FitTransform runs the whole pipeline on X (n×p, finite, no constant
// columns): standardize, covariance, eigendecompose, select, project.
//
// Implementation:
//   - Stage 1: Reject a nil policy and validate it against p before any work.
//   - Stage 2: Standardize with the configured ddof.
//   - Stage 3: Covariance (denominator n-1) and eigendecomposition.
//   - Stage 4: Select by policy, project, compute variance ratios.
//
// Errors from any stage are returned immediately; no partial Result is built.
func FitTransform(X matrix.Matrix, policy Policy, opts ...Option) (*Result, error) {
	o := gatherOptions(opts)

	// Stage 1 (Validate)
	if policy == nil {
		return nil, pcaErrorf(opFitTransform, ErrNilPolicy)
	}
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, pcaErrorf(opFitTransform, err)
	}
	if err := policy.Validate(X.Cols()); err != nil {
		return nil, pcaErrorf(opFitTransform, err)
	}

	// Stage 2 (Standardize)
	Z, scaler, err := Standardize(X, opts...)
	if err != nil {
		return nil, err
	}

	// Stage 3 (Decompose)
	C, err := Covariance(Z)
	if err != nil {
		return nil, err
	}
	pairs, err := Eigendecompose(C, opts...)
	if err != nil {
		return nil, err
	}

	// Stage 4 (Select + Project)
	W, kept, err := Select(pairs, policy)
	if err != nil {
		return nil, err
	}
	scores, err := Project(Z, W)
	if err != nil {
		return nil, err
	}

	ratios := ExplainedVarianceRatios(pairs)[:len(kept)]
	res := &Result{
		Components:              scores,
		Loadings:                W,
		Eigenvalues:             eigenvalues(pairs),
		ExplainedVarianceRatio:  ratios,
		CumulativeVarianceRatio: floats.CumSum(make([]float64, len(ratios)), ratios),
		Scaler:                  scaler,
		Policy:                  policy.String(),
	}
	o.logger.Info("fitted", "rows", X.Rows(), "features", X.Cols(), "policy", res.Policy,
		"k", res.K(), "cumulativeVariance", res.CumulativeVarianceRatio[res.K()-1])

	return res, nil
}

// Transform standardizes new observations with the fitted Scaler and projects
// them onto the fitted loadings.
func (r *Result) Transform(X matrix.Matrix) (*matrix.Dense, error) {
	Z, err := r.Scaler.Transform(X)
	if err != nil {
		return nil, pcaErrorf(opResultTransform, err)
	}
	scores, err := Project(Z, r.Loadings)
	if err != nil {
		return nil, pcaErrorf(opResultTransform, err)
	}

	return scores, nil
}
