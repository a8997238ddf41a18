// SPDX-License-Identifier: MIT

// Package dataset loads tabular house-sale data and turns it into the numeric
// matrix the pca package consumes.
//
// A Table keeps every cell as text together with a missing mask. The usual
// preparation is:
//
//	t, _ := dataset.ReadCSVFile("houseprice.csv", dataset.WithIndexColumn("Id"))
//	_ = t.MarkCategorical("MSSubClass", "OverallQual", "OverallCond")
//	_ = t.DeriveAge("Buiding_age", "YearBuilt", 2024)
//	_, _ = t.Impute(plan)
//	names, X, _ := t.NumericMatrix("SalePrice")
//
// A column is numeric when it is not marked categorical and every present
// cell parses as a finite number.
package dataset
