package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid is returned when a grid would have no rows or no columns.
	ErrEmptyGrid = errors.New("grid: no rows")

	// ErrInvalidShape is returned when the data length is not a multiple of rows.
	ErrInvalidShape = errors.New("grid: data length must be a multiple of rows")
)

// RowLengthError reports a row whose length differs from the first row.
type RowLengthError struct {
	Row      int // zero-based index among the non-blank rows
	Expected int
	Actual   int
}

func (e *RowLengthError) Error() string {
	return fmt.Sprintf("grid: inconsistent row length at row %d: expected %d, got %d", e.Row, e.Expected, e.Actual)
}
