// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and assertions for the kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aastha-ghub/PCA-for-house-price-dataset/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels through the generic At-based materialization path.
type hide struct{ matrix.Matrix }

// NewFilledDense builds an r×c *Dense from row-major vals or fails the test.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	cp := append([]float64(nil), vals...)
	d, err := matrix.NewDenseFrom(r, c, cp)
	require.NoError(t, err)

	return d
}

// RandFilledDense returns an r×c *Dense with uniform [-1,1) entries from seed.
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = 2*rng.Float64() - 1
	}

	return NewFilledDense(t, r, c, vals)
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareClose asserts |a-b| ≤ atol + rtol·|b| elementwise and equal shapes.
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows(), "rows")
	require.Equal(t, a.Cols(), b.Cols(), "cols")
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, bv := MustAt(t, a, i, j), MustAt(t, b, i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				t.Fatalf("(%d,%d): got %.17g want %.17g", i, j, av, bv)
			}
		}
	}
}

// propOrthonormal asserts QᵀQ ≈ I within delta.
func propOrthonormal(t *testing.T, Q matrix.Matrix, delta float64) {
	t.Helper()
	Qt, err := matrix.Transpose(Q)
	require.NoError(t, err)
	G, err := matrix.Mul(Qt, Q)
	require.NoError(t, err)
	I, err := matrix.NewIdentity(Q.Cols())
	require.NoError(t, err)
	CompareClose(t, G, I, 0, delta)
}

// propEigenEquation asserts A*Q ≈ Q*diag(vals) within delta.
func propEigenEquation(t *testing.T, A, Q matrix.Matrix, vals []float64, delta float64) {
	t.Helper()
	AQ, err := matrix.Mul(A, Q)
	require.NoError(t, err)
	n := Q.Rows()
	for i := 0; i < n; i++ {
		for k := 0; k < Q.Cols(); k++ {
			want := MustAt(t, Q, i, k) * vals[k]
			require.InDelta(t, want, MustAt(t, AQ, i, k), delta, "(A·Q)[%d,%d]", i, k)
		}
	}
}
