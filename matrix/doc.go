// Package matrix offers the dense linear-algebra primitives the PCA engine is
// composed from.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors.
//   - Kernels: Mul, Transpose, Scale, MatVec.
//   - Column statistics: CenterColumns, ColumnMeanStd, Covariance.
//   - EigenSym, a cyclic Jacobi eigensolver for real symmetric matrices.
//
// Every kernel returns a fresh *Dense and never mutates its operands; errors
// are package sentinels wrapped with an operation tag, matched via errors.Is.
//
// See the examples in this package and in pca for usage patterns.
package matrix
