// SPDX-License-Identifier: MIT

package pca_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aastha-ghub/PCA-for-house-price-dataset/matrix"
	"github.com/aastha-ghub/PCA-for-house-price-dataset/pca"
)

// TestCovariance_Symmetric: C is exactly symmetric and its trace is p·n/(n-1)
// for ddof=0 standardized data.
func TestCovariance_Symmetric(t *testing.T) {
	t.Parallel()

	const n, p = 50, 5
	Z, _, err := pca.Standardize(housingLike(t, n, p, 10))
	require.NoError(t, err)
	C, err := pca.Covariance(Z)
	require.NoError(t, err)
	require.Equal(t, p, C.Rows())
	require.Equal(t, p, C.Cols())

	var trace float64
	for i := 0; i < p; i++ {
		trace += at(t, C, i, i)
		for j := 0; j < p; j++ {
			assert.Equal(t, at(t, C, i, j), at(t, C, j, i), "(%d,%d)", i, j)
		}
	}
	assert.InDelta(t, float64(p)*n/(n-1), trace, 1e-10)
}

// TestCovariance_Errors covers nil and single-row input.
func TestCovariance_Errors(t *testing.T) {
	t.Parallel()

	_, err := pca.Covariance(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = pca.Covariance(mustDense(t, 1, 2, []float64{1, 2}))
	require.ErrorIs(t, err, pca.ErrInsufficientSamples)
}

// TestEigendecompose_Properties: descending order, Σλ = trace(C),
// orthonormal eigenvectors and C·v = λ·v.
func TestEigendecompose_Properties(t *testing.T) {
	t.Parallel()

	Z, _, err := pca.Standardize(housingLike(t, 60, 6, 11))
	require.NoError(t, err)
	C, err := pca.Covariance(Z)
	require.NoError(t, err)

	pairs, err := pca.Eigendecompose(C)
	require.NoError(t, err)
	require.Len(t, pairs, 6)

	var sum, trace float64
	for k, pr := range pairs {
		sum += pr.Value
		trace += at(t, C, k, k)
		if k > 0 {
			assert.GreaterOrEqual(t, pairs[k-1].Value, pr.Value, "order at %d", k)
		}
		Cv, err := matrix.MatVec(C, pr.Vector)
		require.NoError(t, err)
		for i := range Cv {
			assert.InDelta(t, pr.Value*pr.Vector[i], Cv[i], 1e-10)
		}
	}
	assert.InDelta(t, trace, sum, 1e-10)

	W, _, err := pca.Select(pairs, pca.FixedK(6))
	require.NoError(t, err)
	requireOrthonormal(t, W, 1e-10)
}

// TestEigendecompose_CorrelatedPair: two perfectly correlated columns give
// λ ≈ {2, 0} and a leading vector ≈ ±(1,1)/√2.
func TestEigendecompose_CorrelatedPair(t *testing.T) {
	t.Parallel()

	X := mustDense(t, 5, 2, []float64{
		1, 2,
		2, 4,
		3, 6,
		4, 8,
		5, 10,
	})
	Z, _, err := pca.Standardize(X, pca.WithDDOF(1))
	require.NoError(t, err)
	C, err := pca.Covariance(Z)
	require.NoError(t, err)

	for _, s := range []pca.Solver{pca.JacobiSolver{}, pca.GonumSolver{}} {
		pairs, err := pca.Eigendecompose(C, pca.WithSolver(s))
		require.NoError(t, err, s.Name())
		assert.InDelta(t, 2.0, pairs[0].Value, 1e-12, s.Name())
		assert.InDelta(t, 0.0, pairs[1].Value, 1e-12, s.Name())

		v := pairs[0].Vector
		sign := math.Copysign(1, v[0])
		assert.InDelta(t, 1/math.Sqrt2, sign*v[0], 1e-12, s.Name())
		assert.InDelta(t, 1/math.Sqrt2, sign*v[1], 1e-12, s.Name())
	}
}

// TestEigendecompose_Noise: independent columns give eigenvalues near 1.
func TestEigendecompose_Noise(t *testing.T) {
	t.Parallel()

	Z, _, err := pca.Standardize(noise(t, 5000, 3, 12))
	require.NoError(t, err)
	C, err := pca.Covariance(Z)
	require.NoError(t, err)
	pairs, err := pca.Eigendecompose(C)
	require.NoError(t, err)
	for _, pr := range pairs {
		assert.InDelta(t, 1.0, pr.Value, 0.15)
	}
}

// TestEigendecompose_TiesKeepSolverOrder: the identity yields equal values
// and the stable sort leaves the solver's order untouched.
func TestEigendecompose_TiesKeepSolverOrder(t *testing.T) {
	t.Parallel()

	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	pairs, err := pca.Eigendecompose(I)
	require.NoError(t, err)
	for k, pr := range pairs {
		assert.Equal(t, 1.0, pr.Value)
		assert.Equal(t, 1.0, pr.Vector[k])
	}
}

// TestEigendecompose_SolversAgree: Jacobi and gonum agree on values and, up
// to sign, on vectors.
func TestEigendecompose_SolversAgree(t *testing.T) {
	t.Parallel()

	Z, _, err := pca.Standardize(housingLike(t, 40, 5, 13))
	require.NoError(t, err)
	C, err := pca.Covariance(Z)
	require.NoError(t, err)

	jp, err := pca.Eigendecompose(C, pca.WithSolver(pca.JacobiSolver{}))
	require.NoError(t, err)
	gp, err := pca.Eigendecompose(C, pca.WithSolver(pca.GonumSolver{}))
	require.NoError(t, err)
	for k := range jp {
		assert.InDelta(t, jp[k].Value, gp[k].Value, 1e-10, "λ%d", k)
	}

	Wj, _, err := pca.Select(jp, pca.FixedK(5))
	require.NoError(t, err)
	Wg, _, err := pca.Select(gp, pca.FixedK(5))
	require.NoError(t, err)
	diff, _, err := pca.CompareSignInvariant(Wj, Wg)
	require.NoError(t, err)
	assert.Less(t, diff, 1e-8)
}

// TestEigendecompose_Errors covers shape, finiteness and the sweep budget.
func TestEigendecompose_Errors(t *testing.T) {
	t.Parallel()

	_, err := pca.Eigendecompose(mustDense(t, 2, 3, make([]float64, 6)))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = pca.Eigendecompose(mustDense(t, 2, 2, []float64{1, math.Inf(1), math.Inf(1), 1}))
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = pca.Eigendecompose(mustDense(t, 2, 2, []float64{1, 0.5, 0.1, 1}))
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	Z, _, err := pca.Standardize(housingLike(t, 30, 6, 14))
	require.NoError(t, err)
	C, err := pca.Covariance(Z)
	require.NoError(t, err)
	_, err = pca.Eigendecompose(C, pca.WithMaxSweeps(1))
	require.ErrorIs(t, err, pca.ErrNonConvergence)
}
