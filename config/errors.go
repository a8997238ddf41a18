// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrInvalidConfig is returned by Validate; every problem found is joined
	// into one error that matches this sentinel.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownPolicy is returned for a selection kind other than fixed_k, threshold or variance.
	ErrUnknownPolicy = errors.New("config: unknown selection policy")

	// ErrUnknownSolver is returned for a solver name other than jacobi or gonum.
	ErrUnknownSolver = errors.New("config: unknown eigensolver")
)
