// SPDX-License-Identifier: MIT

// Package pca: functional configuration for the pipeline stages.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: With* constructors panic only on nonsensical
//     values (programmer error); data-dependent failures are returned errors.
package pca

import (
	"math"

	"github.com/go-logr/logr"

	"github.com/aastha-ghub/PCA-for-house-price-dataset/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDDOF is the delta degrees of freedom of the standardizer:
	// σ = sqrt(Σ(x-μ)²/(n-ddof)). 0 matches the population convention of
	// common z-score scalers; it only rescales the covariance, never the
	// component directions or their ranking.
	DefaultDDOF = 0

	// DefaultTolerance is the relative tolerance for symmetry checks and
	// Jacobi convergence.
	DefaultTolerance = matrix.DefaultEigenTol

	// DefaultMaxSweeps caps Jacobi sweeps before ErrNonConvergence.
	DefaultMaxSweeps = matrix.DefaultEigenMaxSweeps
)

const (
	panicDDOFInvalid      = "pca: WithDDOF: ddof must be 0 or 1"
	panicToleranceInvalid = "pca: WithTolerance: tol must be finite, non-negative"
	panicMaxSweepsInvalid = "pca: WithMaxSweeps: sweeps must be >= 1"
	panicSolverNil        = "pca: WithSolver: solver must not be nil"
)

// Option mutates internal options.
type Option func(*options)

type options struct {
	ddof      int
	tol       float64
	maxSweeps int
	solver    Solver
	logger    logr.Logger
}

func defaultOptions() options {
	return options{
		ddof:      DefaultDDOF,
		tol:       DefaultTolerance,
		maxSweeps: DefaultMaxSweeps,
		solver:    JacobiSolver{},
		logger:    logr.Discard(),
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithDDOF selects the standard deviation denominator n-ddof (0 or 1).
func WithDDOF(ddof int) Option {
	if ddof != 0 && ddof != 1 {
		panic(panicDDOFInvalid)
	}

	return func(o *options) { o.ddof = ddof }
}

// WithTolerance sets the relative symmetry/convergence tolerance.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

// WithMaxSweeps caps the iteration budget of iterative solvers.
func WithMaxSweeps(sweeps int) Option {
	if sweeps < 1 {
		panic(panicMaxSweepsInvalid)
	}

	return func(o *options) { o.maxSweeps = sweeps }
}

// WithSolver replaces the default JacobiSolver.
func WithSolver(s Solver) Option {
	if s == nil {
		panic(panicSolverNil)
	}

	return func(o *options) { o.solver = s }
}

// WithLogger routes stage diagnostics to l. V(1) carries shapes and
// eigenvalues, V(2) solver details.
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.logger = l }
}
