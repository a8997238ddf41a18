// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/aastha-ghub/PCA-for-house-price-dataset/config"
	"github.com/aastha-ghub/PCA-for-house-price-dataset/dataset"
	"github.com/aastha-ghub/PCA-for-house-price-dataset/matrix"
	"github.com/aastha-ghub/PCA-for-house-price-dataset/pca"
)

// prepared is the cleaned feature matrix and the bookkeeping around it.
type prepared struct {
	ids      []string
	features []string
	dropped  []string
	fills    []dataset.Filled
	X        *matrix.Dense
}

// prepare loads the CSV named by cfg and turns it into a finite numeric
// matrix ready for FitTransform.
//
// Implementation:
//   - Stage 1: Read the table and cast the configured categorical columns.
//   - Stage 2: Add derived age columns, then impute.
//   - Stage 3: Extract numeric features without the target, optionally
//     dropping zero-variance columns.
func prepare(cfg *config.Config, logger logr.Logger, now time.Time) (*prepared, error) {
	// Stage 1 (Load)
	tbl, err := dataset.ReadCSVFile(cfg.Input.Path, cfg.DatasetOptions(logger)...)
	if err != nil {
		return nil, err
	}
	if err = tbl.MarkCategorical(cfg.Preprocess.Categorical...); err != nil {
		return nil, err
	}

	// Stage 2 (Derive + Impute)
	year := cfg.Year(now)
	for _, d := range cfg.Preprocess.DerivedAges {
		if err = tbl.DeriveAge(d.Name, d.From, year); err != nil {
			return nil, err
		}
	}
	fills, err := tbl.Impute(cfg.Preprocess.Impute)
	if err != nil {
		return nil, err
	}

	// Stage 3 (Extract)
	var exclude []string
	if cfg.Preprocess.Target != "" {
		exclude = append(exclude, cfg.Preprocess.Target)
	}
	names, X, err := tbl.NumericMatrix(exclude...)
	if err != nil {
		return nil, err
	}
	var dropped []string
	if cfg.Preprocess.DropConstant {
		names, X, dropped, err = dataset.DropConstantColumns(names, X)
		if err != nil {
			return nil, err
		}
		if len(dropped) > 0 {
			logger.Info("dropped constant columns", "columns", dropped)
		}
	}
	logger.V(1).Info("prepared", "rows", X.Rows(), "features", names)

	return &prepared{
		ids:      tbl.Index(),
		features: names,
		dropped:  dropped,
		fills:    fills,
		X:        X,
	}, nil
}

// fit runs FitTransform with the configured policy and engine options.
func fit(cfg *config.Config, prep *prepared, logger logr.Logger) (*pca.Result, error) {
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.Options(logger)
	if err != nil {
		return nil, err
	}
	res, err := pca.FitTransform(prep.X, policy, opts...)
	if err != nil {
		return nil, fmt.Errorf("fit %s: %w", cfg.Input.Path, err)
	}

	return res, nil
}

// kaiserLine is the scree reference line: the configured threshold when
// selecting by eigenvalue, otherwise 1.
func kaiserLine(cfg *config.Config) float64 {
	if cfg.PCA.Selection.Kind == config.KindThreshold {
		return cfg.PCA.Selection.Value
	}

	return 1
}
