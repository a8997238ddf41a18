// SPDX-License-Identifier: MIT

package report

import "errors"

var (
	// ErrNoEigenvalues is returned when a chart is requested for an empty spectrum.
	ErrNoEigenvalues = errors.New("report: no eigenvalues")

	// ErrRowIDMismatch is returned when row identifiers do not match the score rows.
	ErrRowIDMismatch = errors.New("report: row id count does not match scores")

	// ErrFeatureMismatch is returned when feature names do not match the loadings rows.
	ErrFeatureMismatch = errors.New("report: feature name count does not match loadings")

	// ErrNilResult is returned when no fitted result is supplied.
	ErrNilResult = errors.New("report: nil result")
)
