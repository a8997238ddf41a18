// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics the PCA pipeline is built from (centering,
//     per-column mean/std, sample covariance) as deterministic loops over the
//     row-major buffer.
//
// Exposed API:
//   - CenterColumns(X)       -> (Xc, means)        // subtract per-column mean
//   - ColumnMeanStd(X, ddof) -> (means, stds)      // std with denominator r-ddof
//   - Covariance(X)          -> (Cov, means)       // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Covariance fills the upper triangle and mirrors it, so the output is
//     bit-for-bit symmetric.
//
// AI-Hints:
//   - Sanitize inputs first (ValidateFinite) if NaN/Inf propagation is undesired.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCenterColumns = "CenterColumns"
	opColumnMeanStd = "ColumnMeanStd"
	opCovariance    = "Covariance"
)

// columnMeans returns Σ_i X[i,j] / r for every column of d.
func columnMeans(d *Dense) []float64 {
	means := make([]float64, d.c)
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			means[j] += d.data[base+j]
		}
	}
	r := float64(d.r)
	for j = range means {
		means[j] /= r
	}

	return means
}

// CenterColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: Validate X (non-nil) and materialize the flat view.
//   - Stage 2: Compute column means in a deterministic pass.
//   - Stage 3: Broadcast-subtract the means into a fresh buffer.
//
// Returns:
//   - *Dense: centered copy (r×c).
//   - []float64: column means (len=c); reuse them to un-center later.
//
// Errors:
//   - ErrNilMatrix from validation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	d, err := toDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	// Stage 2 (Means): one pass over the flat buffer.
	means := columnMeans(d)

	// Stage 3 (Apply): broadcast-subtract into a fresh buffer.
	out, err := SubColumns(d, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return out, means, nil
}

// ColumnMeanStd computes per-column means and standard deviations with the
// denominator r-ddof (ddof=0: population, ddof=1: unbiased sample).
//
// Errors:
//   - ErrNilMatrix from validation.
//   - ErrDimensionMismatch when ddof<0 or r-ddof<=0.
//
// Complexity:
//   - Time O(r*c), Space O(c).
//
// Notes:
//   - Squares are accumulated from centered values (two-pass), which keeps
//     large-offset columns such as years or areas numerically stable.
func ColumnMeanStd(X Matrix, ddof int) ([]float64, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opColumnMeanStd, err)
	}
	if ddof < 0 || X.Rows()-ddof <= 0 {
		return nil, nil, matrixErrorf(opColumnMeanStd, ErrDimensionMismatch)
	}
	d, err := toDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opColumnMeanStd, err)
	}

	means := columnMeans(d)
	sumsq := make([]float64, d.c)
	var (
		i, j, base int
		v          float64
	)
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			v = d.data[base+j] - means[j]
			sumsq[j] += v * v
		}
	}

	inv := 1.0 / float64(d.r-ddof)
	stds := make([]float64, d.c)
	for j = range stds {
		stds[j] = math.Sqrt(sumsq[j] * inv)
	}

	return means, stds, nil
}

// Covariance computes the sample covariance of columns: Cov = (Xcᵀ * Xc)/(r-1).
// Implementation:
//   - Stage 1: Validate X, require r>=2 (sample denominator).
//   - Stage 2: Center columns once.
//   - Stage 3: Accumulate the upper triangle with k→i→j loops, scale, mirror.
//
// Returns:
//   - *Dense: covariance (c×c), exactly symmetric.
//   - []float64: column means used for centering.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2).
//
// Complexity:
//   - Time O(r*c^2/2), Space O(c^2).
//
// Notes:
//   - Result is positive semi-definite on well-formed data (modulo numeric noise).
func Covariance(X Matrix) (*Dense, []float64, error) {
	// Stage 1 (Validate): presence and sample size.
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	if X.Rows() < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	// Stage 2 (Center): reuse the canonical centering implementation.
	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	// Stage 3 (Accumulate): upper triangle of Xcᵀ Xc.
	r, c := Xc.r, Xc.c
	cov := &Dense{r: c, c: c, data: make([]float64, c*c)}
	var (
		k, i, j, base int
		xi            float64
	)
	for k = 0; k < r; k++ {
		base = k * c
		for i = 0; i < c; i++ {
			xi = Xc.data[base+i]
			if xi == 0 {
				continue
			}
			for j = i; j < c; j++ {
				cov.data[i*c+j] += xi * Xc.data[base+j]
			}
		}
	}

	// Stage 4 (Finalize): scale by 1/(r-1) and mirror into the lower triangle.
	inv := 1.0 / float64(r-1)
	for i = 0; i < c; i++ {
		for j = i; j < c; j++ {
			cov.data[i*c+j] *= inv
			cov.data[j*c+i] = cov.data[i*c+j]
		}
	}

	return cov, means, nil
}
