// SPDX-License-Identifier: MIT

package dataset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aastha-ghub/PCA-for-house-price-dataset/dataset"
)

// TestImpute_HousePlan applies the default Ames treatment to the fixture and
// checks nothing is left missing.
func TestImpute_HousePlan(t *testing.T) {
	t.Parallel()

	tbl := readHouses(t)
	fills, err := tbl.Impute(dataset.ImputationPlan{
		"Alley":       {Kind: dataset.Constant, Value: "No alley access"},
		"LotFrontage": {Kind: dataset.Median},
		"MasVnrArea":  {Kind: dataset.Constant, Value: "0"},
		"GarageYrBlt": {Kind: dataset.Constant, Value: "0"},
	})
	require.NoError(t, err)

	assert.Equal(t, []dataset.Filled{
		{Column: "Alley", Kind: dataset.Constant, Value: "No alley access", Count: 3},
		{Column: "GarageYrBlt", Kind: dataset.Constant, Value: "0", Count: 1},
		{Column: "LotFrontage", Kind: dataset.Median, Value: "65", Count: 1},
		{Column: "MasVnrArea", Kind: dataset.Constant, Value: "0", Count: 1},
	}, fills)
	for _, s := range tbl.MissingSummary() {
		assert.Zero(t, s.Total, s.Column)
	}
	alley, err := tbl.Column("Alley")
	require.NoError(t, err)
	assert.Equal(t, []string{"No alley access", "No alley access", "Grvl", "No alley access"}, alley)
}

func TestImpute_Mode(t *testing.T) {
	t.Parallel()

	tbl, err := dataset.ReadCSV(strings.NewReader("e,tie\nSBrkr,b\nFuseA,a\nSBrkr,NA\nNA,NA\n"))
	require.NoError(t, err)
	fills, err := tbl.Impute(dataset.ImputationPlan{
		"e":   {Kind: dataset.Mode},
		"tie": {Kind: dataset.Mode},
	})
	require.NoError(t, err)
	require.Len(t, fills, 2)
	assert.Equal(t, "SBrkr", fills[0].Value)
	assert.Equal(t, "a", fills[1].Value, "ties resolve to the smallest value")
	assert.Equal(t, 2, fills[1].Count)
}

func TestImpute_Median_EvenCount(t *testing.T) {
	t.Parallel()

	tbl, err := dataset.ReadCSV(strings.NewReader("x\n1\n4\nNA\n2\n10\n"))
	require.NoError(t, err)
	fills, err := tbl.Impute(dataset.ImputationPlan{"x": {Kind: dataset.Median}})
	require.NoError(t, err)
	assert.Equal(t, "3", fills[0].Value)
}

// TestImpute_Errors: a failing plan reports the sentinel and leaves the table untouched.
func TestImpute_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		plan dataset.ImputationPlan
		err  error
	}{
		{"unknown", dataset.ImputationPlan{"Nope": {Kind: dataset.Constant}}, dataset.ErrUnknownColumn},
		{"median-categorical", dataset.ImputationPlan{"Alley": {Kind: dataset.Median}}, dataset.ErrNotNumeric},
		{"mean-categorical", dataset.ImputationPlan{"Alley": {Kind: dataset.Mean}}, dataset.ErrNotNumeric},
		{"bad-kind", dataset.ImputationPlan{"Alley": {Kind: "interpolate"}}, dataset.ErrInvalidStrategy},
		{"partial", dataset.ImputationPlan{
			"LotFrontage": {Kind: dataset.Median},
			"Alley":       {Kind: dataset.Median},
		}, dataset.ErrNotNumeric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tbl := readHouses(t)
			_, err := tbl.Impute(tc.plan)
			require.ErrorIs(t, err, tc.err)
			assert.Equal(t, readHouses(t).MissingSummary(), tbl.MissingSummary())
		})
	}

	allMissing, err := dataset.ReadCSV(strings.NewReader("x,y\nNA,1\nNA,2\n"))
	require.NoError(t, err)
	_, err = allMissing.Impute(dataset.ImputationPlan{"x": {Kind: dataset.Mode}})
	require.ErrorIs(t, err, dataset.ErrMissingValues)
	_, err = allMissing.Impute(dataset.ImputationPlan{"x": {Kind: dataset.Median}})
	require.ErrorIs(t, err, dataset.ErrMissingValues)
}
