// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Symmetric eigendecomposition via cyclic Jacobi rotations. Jacobi is
//     slower than tridiagonal QR for large n, but it is unconditionally stable
//     for real symmetric input, produces orthonormal eigenvectors to working
//     precision, and has a simple, deterministic iteration cap.

package matrix

import (
	"fmt"
	"math"
)

// DefaultEigenTol is the relative off-diagonal tolerance used by callers that
// have no better estimate.
const DefaultEigenTol = 1e-12

// DefaultEigenMaxSweeps caps the number of full Jacobi sweeps. Cyclic Jacobi
// converges quadratically; 6..10 sweeps are typical for n ≤ 100.
const DefaultEigenMaxSweeps = 100

// EigenSym computes eigenvalues and eigenvectors of a symmetric matrix via
// cyclic Jacobi sweeps.
// Implementation:
//   - Stage 1: Validate finite, square, symmetric input (within tol·‖A‖_F).
//   - Stage 2: Copy A into a working buffer and start Q = I.
//   - Stage 3: Each sweep visits every (p,q), p<q, in row order and zeroes
//     A[p,q] with one rotation; rotations accumulate into Q.
//   - Stage 4: Stop when max |A[p,q]| ≤ tol·‖A‖_F; fail if maxSweeps elapse first.
//
// Inputs:
//   - m: symmetric Matrix.
//   - tol: relative convergence threshold (typ. 1e-12 for float64); must be finite, ≥ 0.
//   - maxSweeps: cap on full sweeps; values < 0 are treated as 0.
//
// Returns:
//   - []float64: eigenvalues in diagonal order (NOT sorted).
//   - *Dense: Q whose column k is the unit eigenvector for values[k].
//   - int: number of sweeps performed.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad tol or non-finite entries),
//     ErrAsymmetry, ErrMatrixEigenFailed (off-diagonal above threshold after maxSweeps).
//
// Determinism:
//   - Fixed p→q visiting order; identical inputs give identical outputs.
//
// Complexity:
//   - Time O(sweeps · n^3), Space O(n^2).
//
// Notes:
//   - Eigenvector signs are whatever the rotations produce; callers must not
//     rely on a canonical sign.
//
// AI-Hints:
//   - Sort the returned pairs yourself; diagonal order depends on the input layout.
func EigenSym(m Matrix, tol float64, maxSweeps int) ([]float64, *Dense, int, error) {
	// Stage 1 (Validate): structure and numeric policy.
	if err := ValidateSquare(m); err != nil {
		return nil, nil, 0, matrixErrorf(opEigenSym, err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return nil, nil, 0, matrixErrorf(opEigenSym, ErrNaNInf)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, nil, 0, matrixErrorf(opEigenSym, err)
	}

	// Stage 2 (Prepare): working copy A and orthogonal accumulator Q.
	src, err := toDense(m)
	if err != nil {
		return nil, nil, 0, matrixErrorf(opEigenSym, err)
	}
	n := src.r
	a := make([]float64, len(src.data))
	copy(a, src.data)

	var frob float64
	for _, v := range a {
		frob += v * v
	}
	thresh := tol * math.Sqrt(frob)
	if err = ValidateSymmetric(src, thresh); err != nil {
		return nil, nil, 0, matrixErrorf(opEigenSym, err)
	}

	Q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, 0, matrixErrorf(opEigenSym, err)
	}
	q := Q.data

	if maxSweeps < 0 {
		maxSweeps = 0
	}

	// Stage 3 (Sweeps).
	var (
		sweep              int
		p, r, i            int
		app, aqq, apq      float64
		aip, aiq, qip, qiq float64
		theta, t, c, s     float64
	)
	for sweep = 0; sweep < maxSweeps; sweep++ {
		if maxOffDiagonal(a, n) <= thresh {
			break
		}
		for p = 0; p < n-1; p++ {
			for r = p + 1; r < n; r++ {
				apq = a[p*n+r]
				if math.Abs(apq) <= thresh {
					continue // already negligible; rotating would only add roundoff
				}
				app = a[p*n+p]
				aqq = a[r*n+r]

				// θ = (aqq−app)/(2·apq); t = sign(θ)/(|θ|+√(θ²+1)); c = 1/√(1+t²); s = t·c
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				// Rotate rows/cols p and r of A (symmetric update).
				for i = 0; i < n; i++ {
					if i == p || i == r {
						continue
					}
					aip = a[i*n+p]
					aiq = a[i*n+r]
					a[i*n+p] = c*aip - s*aiq
					a[p*n+i] = a[i*n+p]
					a[i*n+r] = s*aip + c*aiq
					a[r*n+i] = a[i*n+r]
				}
				a[p*n+p] = app - t*apq
				a[r*n+r] = aqq + t*apq
				a[p*n+r], a[r*n+p] = 0, 0

				// Accumulate the rotation into Q (columns p and r).
				for i = 0; i < n; i++ {
					qip = q[i*n+p]
					qiq = q[i*n+r]
					q[i*n+p] = c*qip - s*qiq
					q[i*n+r] = s*qip + c*qiq
				}
			}
		}
	}

	// Stage 4 (Finalize): convergence is judged on the state we return.
	if off := maxOffDiagonal(a, n); off > thresh {
		return nil, nil, sweep, matrixErrorf(opEigenSym,
			fmt.Errorf("max off-diagonal %g > %g after %d sweeps: %w", off, thresh, sweep, ErrMatrixEigenFailed))
	}

	vals := make([]float64, n)
	for i = 0; i < n; i++ {
		vals[i] = a[i*n+i]
	}

	return vals, Q, sweep, nil
}

// maxOffDiagonal returns max_{i<j} |a[i,j]| for a row-major n×n buffer.
func maxOffDiagonal(a []float64, n int) float64 {
	var maxOff, off float64
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			off = math.Abs(a[i*n+j])
			if off > maxOff {
				maxOff = off
			}
		}
	}

	return maxOff
}
