// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"
	"math"

	"github.com/aastha-ghub/PCA-for-house-price-dataset/matrix"
)

const (
	opStandardize = "Standardize"
	opTransform   = "Scaler.Transform"
	opInverse     = "Scaler.InverseTransform"
)

// degenerateRelTol flags σ ≤ degenerateRelTol·|μ| as zero variance: a constant
// column whose mean picked up rounding residue still has σ ≈ 1e-16·|μ|.
const degenerateRelTol = 1e-12

// Scaler holds the per-column statistics fitted by Standardize.
type Scaler struct {
	Means []float64 // column means μ
	Stds  []float64 // column standard deviations σ (denominator n-DDOF)
	DDOF  int       // delta degrees of freedom used for Stds
}

// Standardize z-scores every column of X: (x-μ)/σ with the column's own mean
// and standard deviation (denominator n-ddof, see WithDDOF).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf (missing values must be handled upstream).
//   - ErrInsufficientSamples when X has fewer than two rows.
//   - ErrDegenerateColumn (as *ColumnError) for the first zero-variance column.
//
// X is never mutated.
func Standardize(X matrix.Matrix, opts ...Option) (*matrix.Dense, *Scaler, error) {
	o := gatherOptions(opts)

	if err := matrix.ValidateFinite(X); err != nil {
		return nil, nil, pcaErrorf(opStandardize, err)
	}
	if X.Rows() <= 1 {
		return nil, nil, pcaErrorf(opStandardize, ErrInsufficientSamples)
	}

	means, stds, err := matrix.ColumnMeanStd(X, o.ddof)
	if err != nil {
		return nil, nil, pcaErrorf(opStandardize, err)
	}
	for j := range stds {
		if stds[j] == 0 || stds[j] <= degenerateRelTol*math.Abs(means[j]) {
			return nil, nil, pcaErrorf(opStandardize,
				&ColumnError{Column: j, Mean: means[j], Std: stds[j], Err: ErrDegenerateColumn})
		}
	}

	s := &Scaler{Means: means, Stds: stds, DDOF: o.ddof}
	Z, err := s.apply(X, opStandardize)
	if err != nil {
		return nil, nil, err
	}
	o.logger.V(1).Info("standardized", "rows", Z.Rows(), "cols", Z.Cols(), "ddof", o.ddof)

	return Z, s, nil
}

// Transform applies the fitted μ/σ to new observations with the same columns.
func (s *Scaler) Transform(X matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateFinite(X); err != nil {
		return nil, pcaErrorf(opTransform, err)
	}

	return s.apply(X, opTransform)
}

// InverseTransform maps standardized values back to original units: z·σ+μ.
func (s *Scaler) InverseTransform(Z matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(Z); err != nil {
		return nil, pcaErrorf(opInverse, err)
	}
	if Z.Cols() != len(s.Means) {
		return nil, pcaErrorf(opInverse, fmt.Errorf("got %d columns, fitted %d: %w",
			Z.Cols(), len(s.Means), matrix.ErrDimensionMismatch))
	}
	out, err := matrix.MulColumns(Z, s.Stds)
	if err == nil {
		out, err = matrix.AddColumns(out, s.Means)
	}
	if err != nil {
		return nil, pcaErrorf(opInverse, err)
	}

	return out, nil
}

func (s *Scaler) apply(X matrix.Matrix, op string) (*matrix.Dense, error) {
	if X.Cols() != len(s.Means) {
		return nil, pcaErrorf(op, fmt.Errorf("got %d columns, fitted %d: %w",
			X.Cols(), len(s.Means), matrix.ErrDimensionMismatch))
	}
	Z, err := matrix.SubColumns(X, s.Means)
	if err == nil {
		Z, err = matrix.DivColumns(Z, s.Stds)
	}
	if err != nil {
		return nil, pcaErrorf(op, err)
	}

	return Z, nil
}

// denseOf returns m as *matrix.Dense, copying through At when it is another implementation.
func denseOf(m matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d, nil
	}
	out, err := matrix.NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
