// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aastha-ghub/PCA-for-house-price-dataset/config"
	"github.com/aastha-ghub/PCA-for-house-price-dataset/dataset"
	"github.com/aastha-ghub/PCA-for-house-price-dataset/matrix"
	"github.com/aastha-ghub/PCA-for-house-price-dataset/pca"
	"github.com/aastha-ghub/PCA-for-house-price-dataset/report"
)

func runFit(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.Output.Scores, _ = flags.GetString("out")
	}
	if flags.Changed("scree") {
		cfg.Output.Scree, _ = flags.GetString("scree")
	}
	if flags.Changed("scree-html") {
		cfg.Output.ScreeHTML, _ = flags.GetString("scree-html")
	}
	top, _ := flags.GetInt("loadings")

	prep, err := prepare(cfg, logger, time.Now())
	if err != nil {
		return err
	}
	res, err := fit(cfg, prep, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err = report.WriteSummary(out, res); err != nil {
		return err
	}
	Z, err := res.Scaler.Transform(prep.X)
	if err != nil {
		return err
	}
	residual, err := pca.ReconstructionError(Z, res.Components, res.Loadings)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "reconstruction error %.4f\n", residual)
	if top > 0 {
		if err = report.WriteLoadings(out, res, prep.features, top); err != nil {
			return err
		}
	}

	if cfg.Output.Scores != "" {
		if err = writeFile(cfg.Output.Scores, func(f *os.File) error {
			return report.WriteComponentsCSV(f, res, prep.ids)
		}); err != nil {
			return err
		}
		logger.Info("wrote scores", "path", cfg.Output.Scores, "rows", res.Components.Rows(), "k", res.K())
	}

	return writeScree(cfg, res.Eigenvalues, cfg.Output.Scree, cfg.Output.ScreeHTML)
}

func runCompare(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	prep, err := prepare(cfg, logger, time.Now())
	if err != nil {
		return err
	}
	res, err := fit(cfg, prep, logger)
	if err != nil {
		return err
	}
	k := res.K()

	opts, err := cfg.Options(logger)
	if err != nil {
		return err
	}
	Z, _, err := pca.Standardize(prep.X, opts...)
	if err != nil {
		return err
	}
	C, err := pca.Covariance(Z)
	if err != nil {
		return err
	}

	var ref *matrix.Dense
	rows := make([]report.Comparison, 0, 3)
	for _, solver := range []pca.Solver{pca.JacobiSolver{}, pca.GonumSolver{}} {
		pairs, err := pca.Eigendecompose(C, append(opts, pca.WithSolver(solver))...)
		if err != nil {
			return err
		}
		W, kept, err := pca.Select(pairs, pca.FixedK(k))
		if err != nil {
			return err
		}
		row := report.Comparison{Method: solver.Name(), Variances: make([]float64, k)}
		for i, p := range kept {
			row.Variances[i] = p.Value
		}
		if ref == nil {
			ref = W
		} else if row.LoadingDiff, row.Flipped, err = pca.CompareSignInvariant(ref, W); err != nil {
			return err
		}
		rows = append(rows, row)
	}

	cc, err := pca.CrossCheckSVD(Z, k)
	if err != nil {
		return err
	}
	svd := report.Comparison{Method: "svd", Variances: cc.Variances[:k]}
	if svd.LoadingDiff, svd.Flipped, err = pca.CompareSignInvariant(ref, cc.Loadings); err != nil {
		return err
	}
	rows = append(rows, svd)
	logger.V(1).Info("compared", "k", k, "methods", len(rows))

	fmt.Fprintf(cmd.OutOrStdout(), "%d features, %d rows, k=%d (%s)\n",
		len(prep.features), prep.X.Rows(), k, res.Policy)

	return report.WriteComparison(cmd.OutOrStdout(), rows)
}

func runScree(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("out")
	html, _ := cmd.Flags().GetString("html")

	prep, err := prepare(cfg, logger, time.Now())
	if err != nil {
		return err
	}
	res, err := fit(cfg, prep, logger)
	if err != nil {
		return err
	}

	return writeScree(cfg, res.Eigenvalues, path, html)
}

func runMissing(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	all, _ := cmd.Flags().GetBool("all")

	tbl, err := dataset.ReadCSVFile(cfg.Input.Path, cfg.DatasetOptions(logger)...)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows, %d columns\n", cfg.Input.Path, tbl.Rows(), len(tbl.Columns()))

	return report.WriteMissing(cmd.OutOrStdout(), tbl.MissingSummary(), all)
}

// writeScree writes whichever scree outputs have a path.
func writeScree(cfg *config.Config, eigenvalues []float64, path, html string) error {
	line := kaiserLine(cfg)
	if path != "" {
		if err := report.WriteScreePlot(path, eigenvalues, line); err != nil {
			return err
		}
	}
	if html != "" {
		return writeFile(html, func(f *os.File) error {
			return report.WriteScreeHTML(f, eigenvalues, line)
		})
	}

	return nil
}

// writeFile creates path and hands it to write, keeping the first error.
func writeFile(path string, write func(f *os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f)
}
