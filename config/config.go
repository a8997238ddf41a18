// SPDX-License-Identifier: MIT

// Package config holds the pcahouse pipeline configuration.
//
// Configuration can be loaded from:
//   - Programmatic defaults (DefaultConfig), tuned for the Ames house-price data
//   - YAML configuration file (LoadConfig)
//   - Environment variables, which override the file (LoadFromEnvOrFile)
//
// Environment Variables:
//
//	PCAHOUSE_INPUT             - CSV path
//	PCAHOUSE_INDEX_COLUMN      - row identifier column (default: Id)
//	PCAHOUSE_TARGET            - column excluded from the features (default: SalePrice)
//	PCAHOUSE_REFERENCE_YEAR    - year used for derived ages (default: current year)
//	PCAHOUSE_DROP_CONSTANT     - drop zero-variance columns before fitting (default: true)
//	PCAHOUSE_SELECTION_KIND    - fixed_k | threshold | variance (default: fixed_k)
//	PCAHOUSE_SELECTION_VALUE   - k, eigenvalue threshold or variance target (default: 5)
//	PCAHOUSE_SOLVER            - jacobi | gonum (default: jacobi)
//	PCAHOUSE_DDOF              - standardization ddof, 0 or 1 (default: 0)
//	PCAHOUSE_TOLERANCE         - eigensolver tolerance (default: 1e-12)
//	PCAHOUSE_MAX_SWEEPS        - eigensolver sweep cap (default: 100)
//	PCAHOUSE_OUTPUT_SCORES     - component scores CSV path
//	PCAHOUSE_OUTPUT_SCREE      - scree plot path (.png or .svg)
//	PCAHOUSE_OUTPUT_SCREE_HTML - interactive scree chart path
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"gopkg.in/yaml.v3"

	"github.com/aastha-ghub/PCA-for-house-price-dataset/dataset"
	"github.com/aastha-ghub/PCA-for-house-price-dataset/pca"
)

// Selection kinds.
const (
	KindFixedK    = "fixed_k"
	KindThreshold = "threshold"
	KindVariance  = "variance"
)

// Solver names.
const (
	SolverJacobi = "jacobi"
	SolverGonum  = "gonum"
)

// Config is the full pipeline configuration.
//
// Example:
//
//	cfg, err := config.LoadFromEnvOrFile("./pcahouse.yaml")
//	if err == nil {
//		err = cfg.Validate()
//	}
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Preprocess PreprocessConfig `yaml:"preprocess"`
	PCA        PCAConfig        `yaml:"pca"`
	Output     OutputConfig     `yaml:"output"`
}

// InputConfig describes the CSV source.
type InputConfig struct {
	Path          string   `yaml:"path"`
	IndexColumn   string   `yaml:"index_column"`
	MissingTokens []string `yaml:"missing_tokens"`
}

// PreprocessConfig turns the raw table into the feature matrix.
type PreprocessConfig struct {
	// Target is dropped from the features (the sale price).
	Target string `yaml:"target"`
	// Categorical lists numeric-looking code columns to exclude.
	Categorical []string `yaml:"categorical"`
	// Impute maps column names to their missing-value strategy.
	Impute dataset.ImputationPlan `yaml:"impute"`
	// DerivedAges adds "ReferenceYear - From" columns.
	DerivedAges []DerivedAge `yaml:"derived_ages"`
	// ReferenceYear for DerivedAges; 0 means the current year.
	ReferenceYear int `yaml:"reference_year"`
	// DropConstant removes zero-variance columns instead of failing.
	DropConstant bool `yaml:"drop_constant"`
}

// DerivedAge is one derived age column.
type DerivedAge struct {
	Name string `yaml:"name"`
	From string `yaml:"from"`
}

// PCAConfig configures the engine.
type PCAConfig struct {
	Selection SelectionConfig `yaml:"selection"`
	Solver    string          `yaml:"solver"`
	DDOF      int             `yaml:"ddof"`
	Tolerance float64         `yaml:"tolerance"`
	MaxSweeps int             `yaml:"max_sweeps"`
}

// SelectionConfig picks the component selection policy.
type SelectionConfig struct {
	Kind  string  `yaml:"kind"`
	Value float64 `yaml:"value"`
}

// OutputConfig lists report destinations; empty paths are skipped.
type OutputConfig struct {
	Scores    string `yaml:"scores"`
	Scree     string `yaml:"scree"`
	ScreeHTML string `yaml:"scree_html"`
}

// DefaultConfig returns the treatment applied to the house-price data: the
// categorical fills for features whose absence is meaningful, the median lot
// frontage, zero masonry area and garage year, building and remodel ages,
// and the top five components.
func DefaultConfig() *Config {
	plan := dataset.ImputationPlan{
		"Alley":       {Kind: dataset.Constant, Value: "No alley access"},
		"MasVnrType":  {Kind: dataset.Constant, Value: "None"},
		"Electrical":  {Kind: dataset.Constant, Value: "SBrkr"},
		"FireplaceQu": {Kind: dataset.Constant, Value: "No Fireplace"},
		"PoolQC":      {Kind: dataset.Constant, Value: "No Pool"},
		"Fence":       {Kind: dataset.Constant, Value: "No Fence"},
		"MiscFeature": {Kind: dataset.Constant, Value: "None"},
		"LotFrontage": {Kind: dataset.Median},
		"MasVnrArea":  {Kind: dataset.Constant, Value: "0"},
		"GarageYrBlt": {Kind: dataset.Constant, Value: "0"},
	}
	for _, c := range []string{"BsmtQual", "BsmtCond", "BsmtExposure", "BsmtFinType1", "BsmtFinType2"} {
		plan[c] = dataset.Strategy{Kind: dataset.Constant, Value: "No Basement"}
	}
	for _, c := range []string{"GarageType", "GarageFinish", "GarageQual", "GarageCond"} {
		plan[c] = dataset.Strategy{Kind: dataset.Constant, Value: "No Garage"}
	}

	return &Config{
		Input: InputConfig{
			Path:          "houseprice.csv",
			IndexColumn:   "Id",
			MissingTokens: append([]string(nil), dataset.DefaultMissingTokens...),
		},
		Preprocess: PreprocessConfig{
			Target:      "SalePrice",
			Categorical: []string{"MSSubClass", "OverallQual", "OverallCond"},
			Impute:      plan,
			DerivedAges: []DerivedAge{
				{Name: "Buiding_age", From: "YearBuilt"},
				{Name: "Remodel_age", From: "YearRemodAdd"},
			},
			DropConstant: true,
		},
		PCA: PCAConfig{
			Selection: SelectionConfig{Kind: KindFixedK, Value: 5},
			Solver:    SolverJacobi,
			DDOF:      pca.DefaultDDOF,
			Tolerance: pca.DefaultTolerance,
			MaxSweeps: pca.DefaultMaxSweeps,
		},
	}
}

// LoadConfig reads a YAML file over DefaultConfig, so omitted keys keep their
// defaults. A mapping such as preprocess.impute replaces the default one.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes YAML bytes over DefaultConfig.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Preprocess.Impute = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if cfg.Preprocess.Impute == nil {
		cfg.Preprocess.Impute = DefaultConfig().Preprocess.Impute
	}

	return cfg, nil
}

// LoadFromEnvOrFile loads the file when it exists (defaults otherwise) and
// then applies PCAHOUSE_* overrides. Environment variables take precedence.
func LoadFromEnvOrFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		loaded, err := LoadConfig(path)
		switch {
		case err == nil:
			cfg = loaded
		case !errors.Is(err, os.ErrNotExist):
			return nil, err
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overrides fields from lookup; malformed numbers are reported.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	var errs []error
	num := func(key string, set func(string) error) {
		if v, ok := lookup(key); ok && v != "" {
			if err := set(strings.TrimSpace(v)); err != nil {
				errs = append(errs, fmt.Errorf("%s=%q: %w", key, v, err))
			}
		}
	}

	str("PCAHOUSE_INPUT", &c.Input.Path)
	str("PCAHOUSE_INDEX_COLUMN", &c.Input.IndexColumn)
	str("PCAHOUSE_TARGET", &c.Preprocess.Target)
	str("PCAHOUSE_SELECTION_KIND", &c.PCA.Selection.Kind)
	str("PCAHOUSE_SOLVER", &c.PCA.Solver)
	str("PCAHOUSE_OUTPUT_SCORES", &c.Output.Scores)
	str("PCAHOUSE_OUTPUT_SCREE", &c.Output.Scree)
	str("PCAHOUSE_OUTPUT_SCREE_HTML", &c.Output.ScreeHTML)

	num("PCAHOUSE_REFERENCE_YEAR", func(s string) (err error) {
		c.Preprocess.ReferenceYear, err = strconv.Atoi(s)
		return err
	})
	num("PCAHOUSE_DROP_CONSTANT", func(s string) (err error) {
		c.Preprocess.DropConstant, err = strconv.ParseBool(s)
		return err
	})
	num("PCAHOUSE_SELECTION_VALUE", func(s string) (err error) {
		c.PCA.Selection.Value, err = strconv.ParseFloat(s, 64)
		return err
	})
	num("PCAHOUSE_DDOF", func(s string) (err error) {
		c.PCA.DDOF, err = strconv.Atoi(s)
		return err
	})
	num("PCAHOUSE_TOLERANCE", func(s string) (err error) {
		c.PCA.Tolerance, err = strconv.ParseFloat(s, 64)
		return err
	})
	num("PCAHOUSE_MAX_SWEEPS", func(s string) (err error) {
		c.PCA.MaxSweeps, err = strconv.Atoi(s)
		return err
	})

	if len(errs) > 0 {
		return fmt.Errorf("config: environment: %w", errors.Join(errs...))
	}

	return nil
}

// Validate reports every problem at once, joined under ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Input.Path == "" {
		bad("input.path is empty")
	}
	if c.PCA.DDOF != 0 && c.PCA.DDOF != 1 {
		bad("pca.ddof=%d, want 0 or 1", c.PCA.DDOF)
	}
	if math.IsNaN(c.PCA.Tolerance) || math.IsInf(c.PCA.Tolerance, 0) || c.PCA.Tolerance < 0 {
		bad("pca.tolerance=%g must be finite and non-negative", c.PCA.Tolerance)
	}
	if c.PCA.MaxSweeps < 1 {
		bad("pca.max_sweeps=%d must be >= 1", c.PCA.MaxSweeps)
	}
	if _, err := c.Solver(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}
	if _, err := c.Policy(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}
	for col, s := range c.Preprocess.Impute {
		switch s.Kind {
		case dataset.Constant, dataset.Median, dataset.Mean, dataset.Mode:
		default:
			bad("preprocess.impute.%s: unknown kind %q", col, s.Kind)
		}
	}
	for i, d := range c.Preprocess.DerivedAges {
		if d.Name == "" || d.From == "" {
			bad("preprocess.derived_ages[%d] needs name and from", i)
		}
	}

	return errors.Join(errs...)
}

// Policy builds the selection policy. Fixed k must be a whole number.
func (c *Config) Policy() (pca.Policy, error) {
	v := c.PCA.Selection.Value
	switch c.PCA.Selection.Kind {
	case KindFixedK:
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("fixed_k value %g is not an integer: %w", v, pca.ErrInvalidK)
		}
		return pca.FixedK(int(v)), nil
	case KindThreshold:
		return pca.EigenvalueThreshold(v), nil
	case KindVariance:
		return pca.VarianceTarget(v), nil
	default:
		return nil, fmt.Errorf("%q: %w", c.PCA.Selection.Kind, ErrUnknownPolicy)
	}
}

// Solver returns the configured eigensolver.
func (c *Config) Solver() (pca.Solver, error) {
	switch c.PCA.Solver {
	case SolverJacobi, "":
		return pca.JacobiSolver{}, nil
	case SolverGonum:
		return pca.GonumSolver{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", c.PCA.Solver, ErrUnknownSolver)
	}
}

// Options translates the engine settings into pca options. Call Validate first.
func (c *Config) Options(logger logr.Logger) ([]pca.Option, error) {
	solver, err := c.Solver()
	if err != nil {
		return nil, err
	}

	return []pca.Option{
		pca.WithDDOF(c.PCA.DDOF),
		pca.WithTolerance(c.PCA.Tolerance),
		pca.WithMaxSweeps(c.PCA.MaxSweeps),
		pca.WithSolver(solver),
		pca.WithLogger(logger),
	}, nil
}

// Year resolves the reference year for derived ages.
func (c *Config) Year(now time.Time) int {
	if c.Preprocess.ReferenceYear != 0 {
		return c.Preprocess.ReferenceYear
	}

	return now.Year()
}

// DatasetOptions returns the ReadCSV options for Input.
func (c *Config) DatasetOptions(logger logr.Logger) []dataset.Option {
	opts := []dataset.Option{dataset.WithLogger(logger)}
	if c.Input.IndexColumn != "" {
		opts = append(opts, dataset.WithIndexColumn(c.Input.IndexColumn))
	}
	if len(c.Input.MissingTokens) > 0 {
		opts = append(opts, dataset.WithMissingTokens(c.Input.MissingTokens...))
	}

	return opts
}
