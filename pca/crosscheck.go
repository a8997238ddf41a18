// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/aastha-ghub/PCA-for-house-price-dataset/matrix"
)

const (
	opCrossCheck = "CrossCheckSVD"
	opCompare    = "CompareSignInvariant"
)

// CrossCheck is the SVD-based view of the same decomposition.
type CrossCheck struct {
	Loadings  *matrix.Dense // p×k right singular vectors
	Variances []float64     // all min(n,p) component variances, descending
	Scores    *matrix.Dense // n×k centered Z times Loadings
}

// CrossCheckSVD decomposes Z through gonum's stat.PC, which centers the
// columns and factorizes them by SVD instead of forming the covariance.
// Variances use the n-1 denominator and therefore equal the covariance
// eigenvalues of Z; loadings match the eigenvectors up to sign.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNaNInf, ErrInsufficientSamples,
// ErrInvalidK (k<1 or k>min(n,p)), ErrNonConvergence.
func CrossCheckSVD(Z matrix.Matrix, k int) (*CrossCheck, error) {
	if err := matrix.ValidateFinite(Z); err != nil {
		return nil, pcaErrorf(opCrossCheck, err)
	}
	n, p := Z.Rows(), Z.Cols()
	if n <= 1 {
		return nil, pcaErrorf(opCrossCheck, ErrInsufficientSamples)
	}
	if k < 1 || k > min(n, p) {
		return nil, pcaErrorf(opCrossCheck, fmt.Errorf("k=%d with min(n,p)=%d: %w", k, min(n, p), ErrInvalidK))
	}

	centered, _, err := matrix.CenterColumns(Z)
	if err != nil {
		return nil, pcaErrorf(opCrossCheck, err)
	}
	a := mat.NewDense(n, p, centered.RawData())

	var pc stat.PC
	if ok := pc.PrincipalComponents(a, nil); !ok {
		return nil, pcaErrorf(opCrossCheck, fmt.Errorf("%w: SVD factorization failed", ErrNonConvergence))
	}
	var vecs mat.Dense
	pc.VectorsTo(&vecs)
	vars := pc.VarsTo(nil)

	Vk := vecs.Slice(0, p, 0, k)
	var scores mat.Dense
	scores.Mul(a, Vk)

	loadings, err := fromGonum(Vk)
	if err != nil {
		return nil, pcaErrorf(opCrossCheck, err)
	}
	S, err := fromGonum(&scores)
	if err != nil {
		return nil, pcaErrorf(opCrossCheck, err)
	}

	return &CrossCheck{Loadings: loadings, Variances: vars, Scores: S}, nil
}

// CompareSignInvariant compares two matrices column by column after flipping
// the sign of b's column whenever its dot product with a's column is
// negative. It returns the largest absolute entry difference and, per
// column, whether b was flipped.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func CompareSignInvariant(a, b matrix.Matrix) (float64, []bool, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return 0, nil, pcaErrorf(opCompare, err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return 0, nil, pcaErrorf(opCompare, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return 0, nil, pcaErrorf(opCompare, matrix.ErrDimensionMismatch)
	}
	da, err := denseOf(a)
	if err != nil {
		return 0, nil, pcaErrorf(opCompare, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return 0, nil, pcaErrorf(opCompare, err)
	}

	var (
		maxDiff float64
		flips   = make([]bool, da.Cols())
	)
	for j := range flips {
		ca, _ := da.Col(j)
		cb, _ := db.Col(j)
		if floats.Dot(ca, cb) < 0 {
			flips[j] = true
			floats.Scale(-1, cb)
		}
		for i := range ca {
			maxDiff = math.Max(maxDiff, math.Abs(ca[i]-cb[i]))
		}
	}

	return maxDiff, flips, nil
}

// fromGonum copies a gonum matrix into a matrix.Dense.
func fromGonum(m mat.Matrix) (*matrix.Dense, error) {
	r, c := m.Dims()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, m.At(i, j))
		}
	}

	return matrix.NewDenseFrom(r, c, data)
}
