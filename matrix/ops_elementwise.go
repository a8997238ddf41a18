// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column-broadcast kernels (SubColumns, DivColumns, MulColumns, AddColumns)
//     that centering, z-scoring and its inverse are built from.
//   - Whole-matrix helpers for residual checks: Sub, FrobeniusNorm, AllClose.
//
// Determinism & Performance:
//   - One flat pass over the row-major buffer; the column index is tracked
//     alongside the flat index instead of recomputed with a modulo.
//   - Every kernel returns a fresh *Dense; operands are never mutated.

package matrix

import (
	"math"
)

const (
	opSubColumns    = "SubColumns"
	opDivColumns    = "DivColumns"
	opMulColumns    = "MulColumns"
	opAddColumns    = "AddColumns"
	opSub           = "Sub"
	opFrobeniusNorm = "FrobeniusNorm"
	opAllClose      = "AllClose"
)

// ewBroadcastCols applies out[i,j] = f(X[i,j], v[j]).
func ewBroadcastCols(op string, X Matrix, v []float64, f func(x, vj float64) float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err := ValidateVecLen(v, X.Cols()); err != nil {
		return nil, matrixErrorf(op, err)
	}
	d, err := toDense(X)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	out := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data))}
	j := 0
	for idx, x := range d.data {
		out.data[idx] = f(x, v[j])
		if j++; j == d.c {
			j = 0
		}
	}

	return out, nil
}

// SubColumns returns X with v[j] subtracted from every entry of column j.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(v) != X.Cols()).
func SubColumns(X Matrix, v []float64) (*Dense, error) {
	return ewBroadcastCols(opSubColumns, X, v, func(x, vj float64) float64 { return x - vj })
}

// DivColumns returns X with every entry of column j divided by v[j].
// A zero divisor yields ±Inf or NaN; callers reject degenerate columns first.
func DivColumns(X Matrix, v []float64) (*Dense, error) {
	return ewBroadcastCols(opDivColumns, X, v, func(x, vj float64) float64 { return x / vj })
}

// MulColumns returns X with every entry of column j multiplied by v[j].
func MulColumns(X Matrix, v []float64) (*Dense, error) {
	return ewBroadcastCols(opMulColumns, X, v, func(x, vj float64) float64 { return x * vj })
}

// AddColumns returns X with v[j] added to every entry of column j.
func AddColumns(X Matrix, v []float64) (*Dense, error) {
	return ewBroadcastCols(opAddColumns, X, v, func(x, vj float64) float64 { return x + vj })
}

// Sub returns the elementwise difference a - b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	out := &Dense{r: da.r, c: da.c, data: make([]float64, len(da.data))}
	for idx := range out.data {
		out.data[idx] = da.data[idx] - db.data[idx]
	}

	return out, nil
}

// FrobeniusNorm returns sqrt(Σ X[i,j]²).
func FrobeniusNorm(X Matrix) (float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return 0, matrixErrorf(opFrobeniusNorm, err)
	}
	d, err := toDense(X)
	if err != nil {
		return 0, matrixErrorf(opFrobeniusNorm, err)
	}

	return frobenius(d.data), nil
}

// frobenius is the norm of a flat buffer.
func frobenius(data []float64) float64 {
	sum := ZeroSum
	for _, v := range data {
		sum += v * v
	}

	return math.Sqrt(sum)
}

// AllClose reports whether |a-b| ≤ atol + rtol·|b| holds for every element.
// Negative tolerances are taken by absolute value.
//
// Errors: ErrNaNInf (non-finite tolerance), ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := toDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := toDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for idx, bv := range db.data {
		if math.Abs(da.data[idx]-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}
