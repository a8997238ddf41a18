// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/aastha-ghub/PCA-for-house-price-dataset/matrix"
)

const opSelect = "Select"

// varianceSlack absorbs rounding in the cumulative ratio so that a target of
// exactly 1.0 selects all p components.
const varianceSlack = 1e-12

// Policy decides how many of the ordered eigenpairs to keep.
type Policy interface {
	// Validate checks the policy parameters against p features before any
	// computation starts.
	Validate(p int) error
	// Count returns k for eigenvalues sorted in descending order.
	Count(values []float64) (int, error)
	String() string
}

// FixedK keeps the k pairs with the largest eigenvalues.
func FixedK(k int) Policy { return fixedK(k) }

// EigenvalueThreshold keeps every pair with eigenvalue > t. For standardized
// data t = 1.0 keeps components that explain more variance than a single
// original variable.
func EigenvalueThreshold(t float64) Policy { return threshold(t) }

// VarianceTarget keeps the smallest prefix whose cumulative explained variance
// ratio reaches f ∈ (0,1].
func VarianceTarget(f float64) Policy { return varianceTarget(f) }

type fixedK int

func (k fixedK) Validate(p int) error {
	if k < 1 || int(k) > p {
		return fmt.Errorf("k=%d with p=%d: %w", int(k), p, ErrInvalidK)
	}

	return nil
}

func (k fixedK) Count(values []float64) (int, error) {
	if err := k.Validate(len(values)); err != nil {
		return 0, err
	}

	return int(k), nil
}

func (k fixedK) String() string { return fmt.Sprintf("fixed-k(%d)", int(k)) }

type threshold float64

func (t threshold) Validate(int) error {
	v := float64(t)
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("threshold=%g: %w", v, ErrInvalidThreshold)
	}

	return nil
}

func (t threshold) Count(values []float64) (int, error) {
	if err := t.Validate(len(values)); err != nil {
		return 0, err
	}
	k := 0
	for _, v := range values {
		if v <= float64(t) {
			break
		}
		k++
	}
	if k == 0 {
		return 0, fmt.Errorf("no eigenvalue exceeds %g: %w", float64(t), ErrInvalidThreshold)
	}

	return k, nil
}

func (t threshold) String() string { return fmt.Sprintf("eigenvalue>%g", float64(t)) }

type varianceTarget float64

func (f varianceTarget) Validate(int) error {
	v := float64(f)
	if math.IsNaN(v) || v <= 0 || v > 1 {
		return fmt.Errorf("target=%g: %w", v, ErrInvalidVarianceTarget)
	}

	return nil
}

func (f varianceTarget) Count(values []float64) (int, error) {
	if err := f.Validate(len(values)); err != nil {
		return 0, err
	}
	total := floats.Sum(values)
	if !(total > 0) {
		return 0, fmt.Errorf("total variance %g: %w", total, ErrInvalidVarianceTarget)
	}
	cum := floats.CumSum(make([]float64, len(values)), values)
	for k := range cum {
		if cum[k]/total >= float64(f)-varianceSlack {
			return k + 1, nil
		}
	}

	return len(values), nil
}

func (f varianceTarget) String() string { return fmt.Sprintf("variance>=%g", float64(f)) }

// Select applies policy to pairs (descending order) and assembles the p×k
// loading matrix whose column j is the eigenvector of the j-th kept pair.
func Select(pairs []Eigenpair, policy Policy) (*matrix.Dense, []Eigenpair, error) {
	if policy == nil {
		return nil, nil, pcaErrorf(opSelect, ErrNilPolicy)
	}
	if len(pairs) == 0 {
		return nil, nil, pcaErrorf(opSelect, matrix.ErrInvalidDimensions)
	}
	k, err := policy.Count(eigenvalues(pairs))
	if err != nil {
		return nil, nil, pcaErrorf(opSelect, err)
	}

	p := len(pairs[0].Vector)
	W, err := matrix.NewDense(p, k)
	if err != nil {
		return nil, nil, pcaErrorf(opSelect, err)
	}
	for j := 0; j < k; j++ {
		if len(pairs[j].Vector) != p {
			return nil, nil, pcaErrorf(opSelect, matrix.ErrDimensionMismatch)
		}
		for i := 0; i < p; i++ {
			if err = W.Set(i, j, pairs[j].Vector[i]); err != nil {
				return nil, nil, pcaErrorf(opSelect, err)
			}
		}
	}
	kept := make([]Eigenpair, k)
	copy(kept, pairs[:k])

	return W, kept, nil
}

// ExplainedVarianceRatios returns λ_i / Σλ for every pair, in the given order.
// A zero or negative total yields all zeros.
func ExplainedVarianceRatios(pairs []Eigenpair) []float64 {
	vals := eigenvalues(pairs)
	total := floats.Sum(vals)
	out := make([]float64, len(vals))
	if total > 0 {
		for i, v := range vals {
			out[i] = v / total
		}
	}

	return out
}
