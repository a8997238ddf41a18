// SPDX-License-Identifier: MIT

package dataset

import (
	"math"

	"github.com/aastha-ghub/PCA-for-house-price-dataset/matrix"
)

const (
	opDeriveAge     = "DeriveAge"
	opNumericMatrix = "NumericMatrix"
	opDropConstant  = "DropConstantColumns"
)

// constantRelTol treats σ ≤ constantRelTol·|μ| as zero variance.
const constantRelTol = 1e-12

// DeriveAge appends column name = referenceYear - from. Missing source cells
// stay missing.
//
// Errors: ErrColumnExists, ErrUnknownColumn, ErrNotNumeric.
func (t *Table) DeriveAge(name, from string, referenceYear int) error {
	if _, ok := t.pos[name]; ok {
		return columnErrorf(opDeriveAge, name, ErrColumnExists)
	}
	vals, missing, err := t.floats(opDeriveAge, from)
	if err != nil {
		return err
	}
	cells := make([]string, len(vals))
	mask := make([]bool, len(vals))
	for i, v := range vals {
		if missing[i] {
			mask[i] = true
			continue
		}
		cells[i] = formatFloat(float64(referenceYear) - v)
	}
	t.addColumn(name, cells, mask)
	t.logger.V(1).Info("derived column", "name", name, "from", from, "referenceYear", referenceYear)

	return nil
}

// NumericMatrix collects every numeric column not listed in exclude, in
// header order, into an n×p matrix.
//
// Errors: ErrUnknownColumn (exclude names a missing column), ErrNoNumericColumns,
// ErrMissingValues (a selected column still has missing cells).
func (t *Table) NumericMatrix(exclude ...string) ([]string, *matrix.Dense, error) {
	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		if _, ok := t.pos[name]; !ok {
			return nil, nil, columnErrorf(opNumericMatrix, name, ErrUnknownColumn)
		}
		skip[name] = true
	}

	var (
		names []string
		cols  [][]float64
	)
	for _, name := range t.names {
		if skip[name] || !t.IsNumeric(name) {
			continue
		}
		vals, missing, err := t.floats(opNumericMatrix, name)
		if err != nil {
			return nil, nil, err
		}
		for _, m := range missing {
			if m {
				return nil, nil, columnErrorf(opNumericMatrix, name, ErrMissingValues)
			}
		}
		names = append(names, name)
		cols = append(cols, vals)
	}
	if len(names) == 0 {
		return nil, nil, opErrorf(opNumericMatrix, ErrNoNumericColumns)
	}

	n, p := t.Rows(), len(names)
	data := make([]float64, n*p)
	for j, col := range cols {
		for i, v := range col {
			data[i*p+j] = v
		}
	}
	X, err := matrix.NewDenseFrom(n, p, data)
	if err != nil {
		return nil, nil, err
	}
	t.logger.V(1).Info("numeric matrix", "rows", n, "columns", p, "excluded", exclude)

	return names, X, nil
}

// DropConstantColumns removes zero-variance columns from X so that it can be
// standardized. It returns the kept names, the reduced matrix and the names
// that were dropped.
func DropConstantColumns(names []string, X matrix.Matrix) ([]string, *matrix.Dense, []string, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, nil, nil, opErrorf(opDropConstant, err)
	}
	if len(names) != X.Cols() {
		return nil, nil, nil, opErrorf(opDropConstant, matrix.ErrDimensionMismatch)
	}
	means, stds, err := matrix.ColumnMeanStd(X, 0)
	if err != nil {
		return nil, nil, nil, opErrorf(opDropConstant, err)
	}

	var keep []int
	var kept, dropped []string
	for j := range names {
		if stds[j] == 0 || stds[j] <= constantRelTol*math.Abs(means[j]) {
			dropped = append(dropped, names[j])
			continue
		}
		keep = append(keep, j)
		kept = append(kept, names[j])
	}
	if len(keep) == 0 {
		return nil, nil, dropped, opErrorf(opDropConstant, ErrNoNumericColumns)
	}

	n, p := X.Rows(), len(keep)
	data := make([]float64, 0, n*p)
	for i := 0; i < n; i++ {
		for _, j := range keep {
			v, err := X.At(i, j)
			if err != nil {
				return nil, nil, nil, columnErrorf(opDropConstant, names[j], err)
			}
			data = append(data, v)
		}
	}
	out, err := matrix.NewDenseFrom(n, p, data)
	if err != nil {
		return nil, nil, nil, opErrorf(opDropConstant, err)
	}

	return kept, out, dropped, nil
}
