// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when the input has no header or no data rows.
	ErrEmpty = errors.New("dataset: empty table")

	// ErrMalformed is returned for unparsable CSV or ragged records.
	ErrMalformed = errors.New("dataset: malformed csv")

	// ErrDuplicateColumn is returned when a header name occurs twice.
	ErrDuplicateColumn = errors.New("dataset: duplicate column")

	// ErrUnknownColumn is returned when an operation names a column the table lacks.
	ErrUnknownColumn = errors.New("dataset: unknown column")

	// ErrColumnExists is returned when a derived column would overwrite an existing one.
	ErrColumnExists = errors.New("dataset: column already exists")

	// ErrNotNumeric is returned when a numeric operation targets a categorical column.
	ErrNotNumeric = errors.New("dataset: column is not numeric")

	// ErrMissingValues is returned when a computation meets cells that are still missing.
	ErrMissingValues = errors.New("dataset: missing values remain")

	// ErrInvalidStrategy is returned for an imputation strategy with an unknown kind.
	ErrInvalidStrategy = errors.New("dataset: invalid imputation strategy")

	// ErrNoNumericColumns is returned when no usable numeric column is left.
	ErrNoNumericColumns = errors.New("dataset: no numeric columns")
)

// columnErrorf tags err with the operation and column name.
func columnErrorf(op, column string, err error) error {
	return fmt.Errorf("%s %q: %w", op, column, err)
}

// opErrorf tags err with the operation name.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
