// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
input:
  path: %s
preprocess:
  categorical: [MSSubClass]
  impute:
    Alley: {kind: constant, value: No alley access}
    LotFrontage: {kind: median}
  derived_ages:
    - {name: Buiding_age, from: YearBuilt}
  reference_year: 2024
pca:
  selection: {kind: fixed_k, value: 2}
`

// writeHouses writes a deterministic house-price CSV with n rows and a few
// missing cells, plus a config pointing at it, and returns the config path.
func writeHouses(t *testing.T, n int) (dir, cfgPath string) {
	t.Helper()
	dir = t.TempDir()

	var b strings.Builder
	b.WriteString("Id,MSSubClass,LotFrontage,Alley,YearBuilt,GrLivArea,LotArea,PoolArea,SalePrice\n")
	for i := 0; i < n; i++ {
		x := float64(i)
		frontage := fmt.Sprintf("%.0f", 60+20*math.Sin(1.3*x))
		if i%7 == 3 {
			frontage = "NA"
		}
		alley := "NA"
		if i%5 == 0 {
			alley = "Grvl"
		}
		year := 1950 + (i*37)%70
		area := 900 + 15*float64(year-1950) + 200*math.Cos(0.7*x)
		lot := 8000 + 3000*math.Sin(0.4*x+1) + 10*area*math.Cos(2.1*x)
		fmt.Fprintf(&b, "%d,%d,%s,%s,%d,%.0f,%.0f,0,%d\n",
			i+1, 20+10*(i%3), frontage, alley, year, area, lot, 100000+i*1000)
	}

	data := filepath.Join(dir, "houses.csv")
	require.NoError(t, os.WriteFile(data, []byte(b.String()), 0o600))
	cfgPath = filepath.Join(dir, "pcahouse.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(fmt.Sprintf(testConfig, data)), 0o600))

	return dir, cfgPath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestFit_WritesOutputs(t *testing.T) {
	dir, cfg := writeHouses(t, 40)
	scores := filepath.Join(dir, "scores.csv")
	scree := filepath.Join(dir, "scree.svg")
	html := filepath.Join(dir, "scree.html")

	out, err := execute(t, "fit", "--config", cfg, "--out", scores, "--scree", scree,
		"--scree-html", html, "--loadings", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "policy fixed-k(2) kept 2 of 5 components", "PoolArea is dropped as constant")
	assert.Contains(t, out, "Buiding_age")
	assert.Contains(t, out, "reconstruction error 0.")

	f, err := os.Open(scores)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 41)
	assert.Equal(t, []string{"Id", "PC1", "PC2"}, records[0])
	assert.Equal(t, "40", records[40][0])

	raw, err := os.ReadFile(scree)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<svg")
	raw, err = os.ReadFile(html)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "echarts")
}

func TestFit_FlagOverrides(t *testing.T) {
	_, cfg := writeHouses(t, 30)

	out, err := execute(t, "fit", "--config", cfg, "--k", "3", "--solver", "gonum")
	require.NoError(t, err)
	assert.Contains(t, out, "fixed-k(3)")

	out, err = execute(t, "fit", "--config", cfg, "--variance", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "variance>=1")

	_, err = execute(t, "fit", "--config", cfg, "--k", "2", "--variance", "0.9")
	require.Error(t, err)

	_, err = execute(t, "fit", "--config", cfg, "--k", "9")
	require.Error(t, err)

	_, err = execute(t, "fit", "--config", cfg, "--solver", "lapack")
	require.Error(t, err)
}

func TestCompare(t *testing.T) {
	_, cfg := writeHouses(t, 40)

	out, err := execute(t, "compare", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "5 features, 40 rows, k=2")
	for _, m := range []string{"jacobi", "gonum", "svd"} {
		assert.Contains(t, out, m)
	}
}

func TestScree(t *testing.T) {
	dir, cfg := writeHouses(t, 30)
	png := filepath.Join(dir, "scree.png")

	_, err := execute(t, "scree", "--config", cfg, "--threshold", "1", "--out", png)
	require.NoError(t, err)
	raw, err := os.ReadFile(png)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("\x89PNG")))
}

func TestMissing(t *testing.T) {
	_, cfg := writeHouses(t, 14)

	out, err := execute(t, "missing", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "14 rows, 8 columns")
	assert.Contains(t, out, "Alley")
	assert.Contains(t, out, "LotFrontage")
	assert.NotContains(t, out, "GrLivArea")

	out, err = execute(t, "missing", "--config", cfg, "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "GrLivArea")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("pcahouse v%s (%s)\n", version, commit), out)
}

func TestMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "fit", "--config", filepath.Join(dir, "none.yaml"),
		"--input", filepath.Join(dir, "absent.csv"))
	require.Error(t, err)
}
