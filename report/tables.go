// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/aastha-ghub/PCA-for-house-price-dataset/dataset"
	"github.com/aastha-ghub/PCA-for-house-price-dataset/pca"
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// WriteComponentsCSV writes the score matrix with a PC1..PCk header. When
// rowIDs is non-nil it becomes a leading Id column.
func WriteComponentsCSV(w io.Writer, res *pca.Result, rowIDs []string) error {
	if res == nil || res.Components == nil {
		return ErrNilResult
	}
	n, k := res.Components.Rows(), res.Components.Cols()
	if rowIDs != nil && len(rowIDs) != n {
		return fmt.Errorf("%w: %d ids for %d rows", ErrRowIDMismatch, len(rowIDs), n)
	}

	cw := csv.NewWriter(w)
	header := make([]string, 0, k+1)
	if rowIDs != nil {
		header = append(header, "Id")
	}
	for j := 1; j <= k; j++ {
		header = append(header, fmt.Sprintf("PC%d", j))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(header))
	for i := 0; i < n; i++ {
		row, err := res.Components.Row(i)
		if err != nil {
			return err
		}
		off := 0
		if rowIDs != nil {
			record[0] = rowIDs[i]
			off = 1
		}
		for j, v := range row {
			record[off+j] = formatFloat(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteSummary prints the full eigenvalue spectrum with explained and
// cumulative variance, marking the kept components.
func WriteSummary(w io.Writer, res *pca.Result) error {
	if res == nil {
		return ErrNilResult
	}
	if _, err := fmt.Fprintf(w, "policy %s kept %d of %d components\n",
		res.Policy, res.K(), len(res.Eigenvalues)); err != nil {
		return err
	}

	var total float64
	for _, v := range res.Eigenvalues {
		total += v
	}

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "component\teigenvalue\texplained\tcumulative\tkept\t")
	var cum float64
	for i, v := range res.Eigenvalues {
		ratio := 0.0
		if total > 0 {
			ratio = v / total
		}
		cum += ratio
		kept := ""
		if i < res.K() {
			kept = "*"
		}
		fmt.Fprintf(tw, "PC%d\t%.4f\t%.4f\t%.4f\t%s\t\n", i+1, v, ratio, cum, kept)
	}

	return tw.Flush()
}

// WriteLoadings lists, per kept component, the top features by absolute
// loading. top <= 0 lists every feature.
func WriteLoadings(w io.Writer, res *pca.Result, features []string, top int) error {
	if res == nil || res.Loadings == nil {
		return ErrNilResult
	}
	p := res.Loadings.Rows()
	if len(features) != p {
		return fmt.Errorf("%w: %d names for %d rows", ErrFeatureMismatch, len(features), p)
	}
	if top <= 0 || top > p {
		top = p
	}

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "component\trank\tfeature\tloading\t")
	order := make([]int, p)
	for j := 0; j < res.Loadings.Cols(); j++ {
		col, err := res.Loadings.Col(j)
		if err != nil {
			return err
		}
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return math.Abs(col[order[a]]) > math.Abs(col[order[b]])
		})
		for r := 0; r < top; r++ {
			fmt.Fprintf(tw, "PC%d\t%d\t%s\t%+.4f\t\n", j+1, r+1, features[order[r]], col[order[r]])
		}
	}

	return tw.Flush()
}

// WriteMissing prints a per-column missing-value summary, skipping complete
// columns unless all is set.
func WriteMissing(w io.Writer, stats []dataset.MissingStat, all bool) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "column\tmissing\tpercent\t")
	for _, s := range stats {
		if s.Total == 0 && !all {
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t\n", s.Column, s.Total, s.Percent)
	}

	return tw.Flush()
}

// Comparison is one row of a solver comparison: a method's leading
// variances and its sign-aligned distance from the reference loadings.
type Comparison struct {
	Method      string
	Variances   []float64
	LoadingDiff float64
	Flipped     []bool
}

// WriteComparison prints solver comparisons side by side.
func WriteComparison(w io.Writer, rows []Comparison) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "method\tvariances\tmax |Δ loading|\tflipped\t")
	for _, c := range rows {
		vs := ""
		for i, v := range c.Variances {
			if i > 0 {
				vs += " "
			}
			vs += strconv.FormatFloat(v, 'f', 4, 64)
		}
		flipped := 0
		for _, f := range c.Flipped {
			if f {
				flipped++
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%.3g\t%d\t\n", c.Method, vs, c.LoadingDiff, flipped)
	}

	return tw.Flush()
}
