// SPDX-License-Identifier: MIT

// Package main provides the pcahouse CLI entry point.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"

	"github.com/aastha-ghub/PCA-for-house-price-dataset/config"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pcahouse",
		Short: "pcahouse - principal component analysis for house-price data",
		Long: `pcahouse standardizes the numeric features of a house-price CSV,
eigendecomposes their covariance matrix and projects the rows onto the
leading principal components.

Features:
  • Config-driven imputation, categorical casts and derived age columns
  • Fixed-k, eigenvalue-threshold and variance-target component selection
  • Jacobi and LAPACK eigensolvers with an SVD cross-check
  • Scree plots as PNG/SVG/PDF or interactive HTML`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "pcahouse.yaml", "YAML configuration file (missing file means defaults)")
	rootCmd.PersistentFlags().IntP("verbose", "v", 0, "log verbosity (0 milestones, 1 stage details, 2 solver)")

	// Version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pcahouse v%s (%s)\n", version, commit)
		},
	})

	// Fit command
	fitCmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit PCA and write scores, summary and plots",
		RunE:  runFit,
	}
	addPipelineFlags(fitCmd)
	fitCmd.Flags().String("out", "", "component scores CSV path")
	fitCmd.Flags().String("scree", "", "scree plot path (.png, .svg, .pdf)")
	fitCmd.Flags().String("scree-html", "", "interactive scree chart path")
	fitCmd.Flags().Int("loadings", 0, "print the top N loadings per component")
	rootCmd.AddCommand(fitCmd)

	// Compare command
	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare Jacobi, LAPACK and SVD components",
		RunE:  runCompare,
	}
	addPipelineFlags(compareCmd)
	rootCmd.AddCommand(compareCmd)

	// Scree command
	screeCmd := &cobra.Command{
		Use:   "scree",
		Short: "Write only the scree plot",
		RunE:  runScree,
	}
	addPipelineFlags(screeCmd)
	screeCmd.Flags().String("out", "scree.png", "scree plot path (.png, .svg, .pdf)")
	screeCmd.Flags().String("html", "", "also write an interactive chart to this path")
	rootCmd.AddCommand(screeCmd)

	// Missing command
	missingCmd := &cobra.Command{
		Use:   "missing",
		Short: "Print the missing-value summary of the input",
		RunE:  runMissing,
	}
	missingCmd.Flags().String("input", "", "input CSV (overrides config)")
	missingCmd.Flags().Bool("all", false, "include complete columns")
	rootCmd.AddCommand(missingCmd)

	return rootCmd
}

// addPipelineFlags registers the flags that override the config file.
func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().String("input", "", "input CSV (overrides config)")
	cmd.Flags().Int("k", 0, "keep exactly k components")
	cmd.Flags().Float64("threshold", 0, "keep components with eigenvalue above this value")
	cmd.Flags().Float64("variance", 0, "keep the fewest components reaching this variance fraction")
	cmd.Flags().String("solver", "", "eigensolver: jacobi or gonum")
	cmd.MarkFlagsMutuallyExclusive("k", "threshold", "variance")
}

// newLogger builds the stderr logger at the requested verbosity.
func newLogger(cmd *cobra.Command) logr.Logger {
	v, _ := cmd.Flags().GetInt("verbose")
	stdr.SetVerbosity(v)

	return stdr.New(log.New(cmd.ErrOrStderr(), "", log.LstdFlags))
}

// loadConfig resolves the config file, environment and flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadFromEnvOrFile(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input.Path, _ = flags.GetString("input")
	}
	if flags.Changed("solver") {
		cfg.PCA.Solver, _ = flags.GetString("solver")
	}
	switch {
	case flags.Changed("k"):
		k, _ := flags.GetInt("k")
		cfg.PCA.Selection = config.SelectionConfig{Kind: config.KindFixedK, Value: float64(k)}
	case flags.Changed("threshold"):
		t, _ := flags.GetFloat64("threshold")
		cfg.PCA.Selection = config.SelectionConfig{Kind: config.KindThreshold, Value: t}
	case flags.Changed("variance"):
		f, _ := flags.GetFloat64("variance")
		cfg.PCA.Selection = config.SelectionConfig{Kind: config.KindVariance, Value: f}
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
