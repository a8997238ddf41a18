// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Scree plot geometry.
const (
	screeWidth  = 8 * vg.Inch
	screeHeight = 5 * vg.Inch
)

// screePlot builds the eigenvalue-versus-component chart. A positive
// threshold adds a dashed horizontal reference line (the Kaiser criterion
// at 1.0 for standardized data).
func screePlot(eigenvalues []float64, threshold float64) (*plot.Plot, error) {
	if len(eigenvalues) == 0 {
		return nil, ErrNoEigenvalues
	}

	p := plot.New()
	p.Title.Text = "Scree plot"
	p.X.Label.Text = "Principal component"
	p.Y.Label.Text = "Eigenvalue"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(eigenvalues))
	for i, v := range eigenvalues {
		pts[i].X = float64(i + 1)
		pts[i].Y = v
	}
	line, scatter, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, err
	}
	line.Color = color.RGBA{B: 200, A: 255}
	scatter.Color = line.Color
	p.Add(line, scatter)
	p.Legend.Add("eigenvalue", line, scatter)

	if threshold > 0 {
		kaiser, err := plotter.NewLine(plotter.XYs{{X: 1, Y: threshold}, {X: float64(len(eigenvalues)), Y: threshold}})
		if err != nil {
			return nil, err
		}
		kaiser.Color = color.RGBA{R: 200, A: 255}
		kaiser.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
		p.Add(kaiser)
		p.Legend.Add(fmt.Sprintf("threshold %g", threshold), kaiser)
	}
	p.Legend.Top = true

	return p, nil
}

// RenderScreePlot writes the scree plot to w in format ("png", "svg", "pdf", ...).
func RenderScreePlot(w io.Writer, format string, eigenvalues []float64, threshold float64) error {
	p, err := screePlot(eigenvalues, threshold)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(screeWidth, screeHeight, format)
	if err != nil {
		return fmt.Errorf("report: scree %s: %w", format, err)
	}
	_, err = wt.WriteTo(w)

	return err
}

// WriteScreePlot saves the scree plot to path; the extension picks the format.
func WriteScreePlot(path string, eigenvalues []float64, threshold float64) (err error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return RenderScreePlot(f, format, eigenvalues, threshold)
}

// WriteScreeHTML renders an interactive scree chart as a standalone HTML page.
// A positive threshold is drawn as a mark line.
func WriteScreeHTML(w io.Writer, eigenvalues []float64, threshold float64) error {
	if len(eigenvalues) == 0 {
		return ErrNoEigenvalues
	}

	labels := make([]string, len(eigenvalues))
	data := make([]opts.LineData, len(eigenvalues))
	for i, v := range eigenvalues {
		labels[i] = fmt.Sprintf("PC%d", i+1)
		data[i] = opts.LineData{Value: v}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Scree plot",
			Theme:     types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Scree plot",
			Subtitle: "Eigenvalues of the covariance matrix of standardized features",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Component"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Eigenvalue", Scale: opts.Bool(true)}),
	)

	series := []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
	}
	if threshold > 0 {
		series = append(series, charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
			Name:  "Kaiser",
			YAxis: threshold,
		}))
	}
	line.SetXAxis(labels).AddSeries("eigenvalue", data, series...)

	return line.Render(w)
}
