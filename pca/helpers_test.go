// SPDX-License-Identifier: MIT

package pca_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aastha-ghub/PCA-for-house-price-dataset/matrix"
)

// hide wraps a Matrix so that *matrix.Dense fast paths are not taken.
type hide struct{ matrix.Matrix }

// mustDense builds an r×c matrix from row-major vals.
func mustDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(r, c, append([]float64(nil), vals...))
	require.NoError(t, err)

	return d
}

// housingLike returns n observations of p features with different scales and
// a shared factor plus column-specific noise, roughly the shape of the house-price data.
func housingLike(t *testing.T, n, p int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, n*p)
	for i := 0; i < n; i++ {
		base := rng.NormFloat64()
		for j := 0; j < p; j++ {
			scale := math.Pow(10, float64(j%4))
			vals[i*p+j] = scale * (float64(j+1) + 0.8*base + (0.3+0.4*float64(j))*rng.NormFloat64())
		}
	}

	return mustDense(t, n, p, vals)
}

// noise returns n×p independent standard normal draws.
func noise(t *testing.T, n, p int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, n*p)
	for i := range vals {
		vals[i] = rng.NormFloat64()
	}

	return mustDense(t, n, p, vals)
}

// at reads m[i,j] or fails the test.
func at(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireClose asserts equal shapes and |a-b| ≤ delta elementwise.
func requireClose(t *testing.T, a, b matrix.Matrix, delta float64) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows(), "rows")
	require.Equal(t, a.Cols(), b.Cols(), "cols")
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			require.InDelta(t, at(t, b, i, j), at(t, a, i, j), delta, "(%d,%d)", i, j)
		}
	}
}

// requireOrthonormal asserts WᵀW ≈ I.
func requireOrthonormal(t *testing.T, W matrix.Matrix, delta float64) {
	t.Helper()
	Wt, err := matrix.Transpose(W)
	require.NoError(t, err)
	G, err := matrix.Mul(Wt, W)
	require.NoError(t, err)
	I, err := matrix.NewIdentity(W.Cols())
	require.NoError(t, err)
	requireClose(t, G, I, delta)
}

// flipColumns returns a copy of W with the listed columns negated.
func flipColumns(t *testing.T, W *matrix.Dense, cols ...int) *matrix.Dense {
	t.Helper()
	out := W.Clone().(*matrix.Dense)
	for _, j := range cols {
		for i := 0; i < out.Rows(); i++ {
			require.NoError(t, out.Set(i, j, -at(t, out, i, j)))
		}
	}

	return out
}
