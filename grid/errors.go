package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows, no columns or no cells.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrMissingCell indicates a sparse input does not cover its inferred bounds.
	ErrMissingCell = errors.New("grid: missing cell inside inferred bounds")
)
