// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
)

const opReadCSV = "ReadCSV"

// DefaultMissingTokens are the cell values treated as missing.
var DefaultMissingTokens = []string{"", "NA"}

// Option configures ReadCSV.
type Option func(*options)

type options struct {
	indexColumn string
	missing     map[string]struct{}
	comma       rune
	logger      logr.Logger
}

func gatherOptions(opts []Option) options {
	o := options{comma: ',', logger: logr.Discard()}
	WithMissingTokens(DefaultMissingTokens...)(&o)
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithIndexColumn moves the named column out of the data and into Index.
func WithIndexColumn(name string) Option {
	return func(o *options) { o.indexColumn = name }
}

// WithMissingTokens replaces the set of cell values read as missing.
// Cells are compared after trimming surrounding spaces.
func WithMissingTokens(tokens ...string) Option {
	return func(o *options) {
		o.missing = make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			o.missing[strings.TrimSpace(tok)] = struct{}{}
		}
	}
}

// WithComma sets the field delimiter.
func WithComma(r rune) Option {
	return func(o *options) { o.comma = r }
}

// WithLogger routes ingestion diagnostics to l.
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Table is a column-oriented view of a CSV file. Cells keep their text; a
// parallel mask marks the missing ones.
type Table struct {
	names       []string
	pos         map[string]int
	cells       [][]string // cells[col][row]
	missing     [][]bool   // missing[col][row]
	categorical map[string]bool
	index       []string
	logger      logr.Logger
}

// ReadCSV parses a header row followed by records of the same width.
//
// Errors: ErrEmpty, ErrMalformed, ErrDuplicateColumn, ErrUnknownColumn (index column).
func ReadCSV(r io.Reader, opts ...Option) (*Table, error) {
	o := gatherOptions(opts)

	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, opErrorf(opReadCSV, ErrEmpty)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: header: %v: %w", opReadCSV, err, ErrMalformed)
	}

	idxCol := -1
	t := &Table{pos: make(map[string]int, len(header)), categorical: map[string]bool{}, logger: o.logger}
	for i, h := range header {
		h = strings.TrimSpace(h)
		if o.indexColumn != "" && h == o.indexColumn {
			idxCol = i
			continue
		}
		if _, dup := t.pos[h]; dup {
			return nil, columnErrorf(opReadCSV, h, ErrDuplicateColumn)
		}
		t.pos[h] = len(t.names)
		t.names = append(t.names, h)
	}
	if o.indexColumn != "" && idxCol < 0 {
		return nil, columnErrorf(opReadCSV, o.indexColumn, ErrUnknownColumn)
	}
	t.cells = make([][]string, len(t.names))
	t.missing = make([][]bool, len(t.names))

	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %v: %w", opReadCSV, line, err, ErrMalformed)
		}
		j := 0
		for i, cell := range rec {
			cell = strings.TrimSpace(cell)
			if i == idxCol {
				t.index = append(t.index, cell)
				continue
			}
			_, miss := o.missing[cell]
			t.cells[j] = append(t.cells[j], cell)
			t.missing[j] = append(t.missing[j], miss)
			j++
		}
	}
	if t.Rows() == 0 {
		return nil, opErrorf(opReadCSV, ErrEmpty)
	}
	o.logger.V(1).Info("read table", "rows", t.Rows(), "columns", len(t.names), "index", o.indexColumn)

	return t, nil
}

// ReadCSVFile opens path and calls ReadCSV.
func ReadCSVFile(path string, opts ...Option) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, opErrorf(opReadCSV, err)
	}
	defer f.Close()

	return ReadCSV(f, opts...)
}

// Rows returns the number of data records.
func (t *Table) Rows() int {
	if len(t.cells) == 0 {
		return len(t.index)
	}

	return len(t.cells[0])
}

// Columns returns the column names in header order (index column excluded).
func (t *Table) Columns() []string { return append([]string(nil), t.names...) }

// Index returns the index column values, or nil when none was configured.
func (t *Table) Index() []string { return append([]string(nil), t.index...) }

// Column returns a copy of the named column's cells; missing cells are "".
func (t *Table) Column(name string) ([]string, error) {
	j, ok := t.pos[name]
	if !ok {
		return nil, columnErrorf("Column", name, ErrUnknownColumn)
	}
	out := make([]string, len(t.cells[j]))
	for i, v := range t.cells[j] {
		if !t.missing[j][i] {
			out[i] = v
		}
	}

	return out, nil
}

// IsNumeric reports whether every present cell of the column parses as a
// finite float and the column was not marked categorical.
func (t *Table) IsNumeric(name string) bool {
	j, ok := t.pos[name]
	if !ok || t.categorical[name] {
		return false
	}
	for i, v := range t.cells[j] {
		if t.missing[j][i] {
			continue
		}
		if _, ok := parseFinite(v); !ok {
			return false
		}
	}

	return true
}

// MarkCategorical forces numeric-looking codes (MSSubClass, OverallQual, ...)
// to be treated as categories.
func (t *Table) MarkCategorical(cols ...string) error {
	for _, c := range cols {
		if _, ok := t.pos[c]; !ok {
			return columnErrorf("MarkCategorical", c, ErrUnknownColumn)
		}
	}
	for _, c := range cols {
		t.categorical[c] = true
	}
	t.logger.V(1).Info("marked categorical", "columns", cols)

	return nil
}

// floats returns the parsed values of a numeric column and its missing mask.
func (t *Table) floats(op, name string) ([]float64, []bool, error) {
	j, ok := t.pos[name]
	if !ok {
		return nil, nil, columnErrorf(op, name, ErrUnknownColumn)
	}
	if !t.IsNumeric(name) {
		return nil, nil, columnErrorf(op, name, ErrNotNumeric)
	}
	vals := make([]float64, len(t.cells[j]))
	for i, v := range t.cells[j] {
		if !t.missing[j][i] {
			vals[i], _ = parseFinite(v)
		}
	}

	return vals, t.missing[j], nil
}

// addColumn appends a new column built from cells and mask.
func (t *Table) addColumn(name string, cells []string, missing []bool) {
	t.pos[name] = len(t.names)
	t.names = append(t.names, name)
	t.cells = append(t.cells, cells)
	t.missing = append(t.missing, missing)
}

func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
