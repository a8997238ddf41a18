// SPDX-License-Identifier: MIT
// Package pca: sentinel error set.
// Every failure is a precondition violation detected eagerly at a stage
// boundary; nothing is retried and no partial result is returned. Callers
// match with errors.Is; ColumnError additionally exposes the column index.

package pca

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateColumn is returned by Standardize when a column has zero variance.
	ErrDegenerateColumn = errors.New("pca: zero-variance column")

	// ErrInsufficientSamples is returned when fewer than two observations are given.
	ErrInsufficientSamples = errors.New("pca: need at least two observations")

	// ErrNonConvergence is returned when the eigensolver exhausts its iteration budget.
	ErrNonConvergence = errors.New("pca: eigensolver did not converge")

	// ErrInvalidK is returned by FixedK when k < 1 or k > p.
	ErrInvalidK = errors.New("pca: invalid number of components")

	// ErrInvalidThreshold is returned by EigenvalueThreshold for a non-finite or
	// negative threshold, or when no eigenvalue exceeds it.
	ErrInvalidThreshold = errors.New("pca: invalid eigenvalue threshold")

	// ErrInvalidVarianceTarget is returned by VarianceTarget when the target is outside (0,1].
	ErrInvalidVarianceTarget = errors.New("pca: invalid explained-variance target")

	// ErrNilPolicy is returned when no selection policy is supplied.
	ErrNilPolicy = errors.New("pca: nil selection policy")

	// ErrZeroVariance is returned by ReconstructionError for an all-zero input.
	ErrZeroVariance = errors.New("pca: input has zero total variance")
)

// ColumnError reports which input column violated a per-column precondition.
type ColumnError struct {
	Column int     // zero-based column index
	Mean   float64 // column mean observed
	Std    float64 // column standard deviation observed
	Err    error   // sentinel, e.g. ErrDegenerateColumn
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("column %d (mean=%g std=%g): %v", e.Column, e.Mean, e.Std, e.Err)
}

func (e *ColumnError) Unwrap() error { return e.Err }

// pcaErrorf wraps err with an operation tag, preserving it for errors.Is/As.
func pcaErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
