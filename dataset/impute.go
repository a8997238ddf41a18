// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

const opImpute = "Impute"

// StrategyKind names how a column's missing cells are filled.
type StrategyKind string

const (
	// Constant fills with Strategy.Value verbatim.
	Constant StrategyKind = "constant"
	// Median fills with the median of the present values (numeric columns).
	Median StrategyKind = "median"
	// Mean fills with the arithmetic mean of the present values (numeric columns).
	Mean StrategyKind = "mean"
	// Mode fills with the most frequent present value; ties go to the
	// lexicographically smallest.
	Mode StrategyKind = "mode"
)

// Strategy is one column's imputation rule.
type Strategy struct {
	Kind  StrategyKind `yaml:"kind"`
	Value string       `yaml:"value,omitempty"`
}

// ImputationPlan maps column names to their strategies.
type ImputationPlan map[string]Strategy

// Filled records what Impute wrote into one column.
type Filled struct {
	Column string
	Kind   StrategyKind
	Value  string
	Count  int
}

// MissingStat is one row of MissingSummary.
type MissingStat struct {
	Column  string
	Total   int
	Percent float64
}

// MissingSummary counts missing cells per column, sorted by Total descending
// and then by column name.
func (t *Table) MissingSummary() []MissingStat {
	n := t.Rows()
	out := make([]MissingStat, len(t.names))
	for j, name := range t.names {
		c := 0
		for _, m := range t.missing[j] {
			if m {
				c++
			}
		}
		out[j] = MissingStat{Column: name, Total: c}
		if n > 0 {
			out[j].Percent = float64(c) * 100 / float64(n)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Total != out[b].Total {
			return out[a].Total > out[b].Total
		}
		return out[a].Column < out[b].Column
	})

	return out
}

// Impute fills missing cells in place according to plan. The whole plan is
// checked before any cell changes, so a failed call leaves the table as it
// was. Columns are processed in name order.
//
// Errors: ErrUnknownColumn, ErrInvalidStrategy, ErrNotNumeric (median/mean on
// a categorical column), ErrMissingValues (median/mean/mode of an all-missing column).
func (t *Table) Impute(plan ImputationPlan) ([]Filled, error) {
	names := make([]string, 0, len(plan))
	for name := range plan {
		names = append(names, name)
	}
	sort.Strings(names)

	fills := make([]Filled, 0, len(names))
	for _, name := range names {
		s := plan[name]
		j, ok := t.pos[name]
		if !ok {
			return nil, columnErrorf(opImpute, name, ErrUnknownColumn)
		}
		value, err := t.fillValue(name, s)
		if err != nil {
			return nil, err
		}
		count := 0
		for _, m := range t.missing[j] {
			if m {
				count++
			}
		}
		fills = append(fills, Filled{Column: name, Kind: s.Kind, Value: value, Count: count})
	}

	for _, f := range fills {
		j := t.pos[f.Column]
		for i, m := range t.missing[j] {
			if m {
				t.cells[j][i] = f.Value
				t.missing[j][i] = false
			}
		}
		t.logger.V(1).Info("imputed", "column", f.Column, "kind", string(f.Kind), "value", f.Value, "cells", f.Count)
	}

	return fills, nil
}

// fillValue computes the replacement text for one column without mutating it.
func (t *Table) fillValue(name string, s Strategy) (string, error) {
	switch s.Kind {
	case Constant:
		return s.Value, nil
	case Median, Mean:
		vals, missing, err := t.floats(opImpute, name)
		if err != nil {
			return "", err
		}
		present := make([]float64, 0, len(vals))
		for i, v := range vals {
			if !missing[i] {
				present = append(present, v)
			}
		}
		if len(present) == 0 {
			return "", columnErrorf(opImpute, name, ErrMissingValues)
		}
		if s.Kind == Mean {
			return formatFloat(stat.Mean(present, nil)), nil
		}
		return formatFloat(median(present)), nil
	case Mode:
		j := t.pos[name]
		freq := map[string]int{}
		for i, v := range t.cells[j] {
			if !t.missing[j][i] {
				freq[v]++
			}
		}
		if len(freq) == 0 {
			return "", columnErrorf(opImpute, name, ErrMissingValues)
		}
		best, bestN := "", 0
		for v, n := range freq {
			if n > bestN || (n == bestN && v < best) {
				best, bestN = v, n
			}
		}
		return best, nil
	default:
		return "", columnErrorf(opImpute, name, fmt.Errorf("kind %q: %w", s.Kind, ErrInvalidStrategy))
	}
}

// median of vals; even counts average the two middle values.
func median(vals []float64) float64 {
	s := append([]float64(nil), vals...)
	sort.Float64s(s)
	m := len(s) / 2
	if len(s)%2 == 1 {
		return s[m]
	}

	return (s[m-1] + s[m]) / 2
}
