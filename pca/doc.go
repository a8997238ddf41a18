// SPDX-License-Identifier: MIT

// Package pca implements principal component analysis by eigendecomposition
// of the sample covariance matrix of standardized data.
//
// The pipeline is split into stages that can be used on their own:
//
//	Z, scaler, _ := pca.Standardize(X)          // z-score every column
//	C, _ := pca.Covariance(Z)                    // p×p, denominator n-1
//	pairs, _ := pca.Eigendecompose(C)            // descending eigenvalues
//	W, kept, _ := pca.Select(pairs, pca.FixedK(5))
//	scores, _ := pca.Project(Z, W)               // n×k
//
// FitTransform chains them and returns a Result with the scores, loadings,
// all eigenvalues and the explained variance ratios of the kept components.
//
// Eigenvectors are only defined up to sign, and the relative order of equal
// eigenvalues is whatever the solver produced. Compare results with
// CompareSignInvariant rather than entry by entry.
//
// Two symmetric solvers are available: JacobiSolver (default, in-repo cyclic
// Jacobi) and GonumSolver (LAPACK via gonum). CrossCheckSVD recomputes the
// decomposition through an SVD of the centered data for verification.
package pca
