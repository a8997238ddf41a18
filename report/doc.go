// SPDX-License-Identifier: MIT

// Package report renders fitted PCA results: the scree plot as a static image
// (gonum/plot) or an interactive page (go-echarts), component scores as CSV,
// and plain-text tables for the terminal.
package report
