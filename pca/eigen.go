// SPDX-License-Identifier: MIT

package pca

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/aastha-ghub/PCA-for-house-price-dataset/matrix"
)

const opEigendecompose = "Eigendecompose"

// Eigenpair is one eigenvalue of the covariance matrix with its unit eigenvector.
// The vector is defined only up to sign.
type Eigenpair struct {
	Value  float64
	Vector []float64
}

// Solver computes all eigenpairs of a real symmetric matrix. Implementations
// return eigenvalues in any order with vecs[:,k] belonging to vals[k], and
// must report iteration-budget exhaustion as ErrNonConvergence.
type Solver interface {
	Name() string
	EigenSym(C *matrix.Dense, tol float64, maxSweeps int) (vals []float64, vecs *matrix.Dense, err error)
}

// JacobiSolver runs the in-repo cyclic Jacobi kernel (matrix.EigenSym).
type JacobiSolver struct{}

// Name implements Solver.
func (JacobiSolver) Name() string { return "jacobi" }

// EigenSym implements Solver.
func (JacobiSolver) EigenSym(C *matrix.Dense, tol float64, maxSweeps int) ([]float64, *matrix.Dense, error) {
	vals, Q, _, err := matrix.EigenSym(C, tol, maxSweeps)
	if errors.Is(err, matrix.ErrMatrixEigenFailed) {
		return nil, nil, fmt.Errorf("%w: %v", ErrNonConvergence, err)
	}

	return vals, Q, err
}

// GonumSolver delegates to gonum's LAPACK-backed symmetric eigensolver
// (tridiagonal reduction + implicit QL/QR). tol and maxSweeps are ignored;
// LAPACK applies its own iteration cap.
type GonumSolver struct{}

// Name implements Solver.
func (GonumSolver) Name() string { return "gonum" }

// EigenSym implements Solver.
func (GonumSolver) EigenSym(C *matrix.Dense, _ float64, _ int) ([]float64, *matrix.Dense, error) {
	p := C.Rows()
	sym := mat.NewSymDense(p, C.RawData())

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, fmt.Errorf("%w: gonum EigenSym factorization failed", ErrNonConvergence)
	}
	vals := es.Values(nil)

	var ev mat.Dense
	es.VectorsTo(&ev)
	Q, err := fromGonum(&ev)
	if err != nil {
		return nil, nil, err
	}

	return vals, Q, nil
}

// Eigendecompose computes all eigenpairs of the symmetric matrix C and orders
// them by descending eigenvalue.
//
// Ordering policy: sort.SliceStable on the value, so tied eigenvalues keep
// the order the solver produced them in. That order is solver-specific and
// callers must not depend on it; eigenvector signs are likewise unspecified.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf, matrix.ErrAsymmetry.
//   - ErrNonConvergence when the solver exhausts its budget.
func Eigendecompose(C matrix.Matrix, opts ...Option) ([]Eigenpair, error) {
	o := gatherOptions(opts)

	if err := matrix.ValidateSquare(C); err != nil {
		return nil, pcaErrorf(opEigendecompose, err)
	}
	if err := matrix.ValidateFinite(C); err != nil {
		return nil, pcaErrorf(opEigendecompose, err)
	}
	d, err := denseOf(C)
	if err != nil {
		return nil, pcaErrorf(opEigendecompose, err)
	}

	o.logger.V(2).Info("solving", "solver", o.solver.Name(), "tol", o.tol, "maxSweeps", o.maxSweeps)
	vals, vecs, err := o.solver.EigenSym(d, o.tol, o.maxSweeps)
	if err != nil {
		return nil, pcaErrorf(opEigendecompose, err)
	}

	p := d.Rows()
	pairs := make([]Eigenpair, p)
	for k := 0; k < p; k++ {
		col, err := vecs.Col(k)
		if err != nil {
			return nil, pcaErrorf(opEigendecompose, err)
		}
		pairs[k] = Eigenpair{Value: vals[k], Vector: col}
	}
	sort.SliceStable(pairs, func(a, b int) bool { return pairs[a].Value > pairs[b].Value })

	o.logger.V(1).Info("eigendecomposed", "solver", o.solver.Name(), "p", p, "eigenvalues", eigenvalues(pairs))

	return pairs, nil
}

// eigenvalues extracts the values of pairs in their current order.
func eigenvalues(pairs []Eigenpair) []float64 {
	out := make([]float64, len(pairs))
	for i := range pairs {
		out[i] = pairs[i].Value
	}

	return out
}
