package geoplot

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the umbrella error for every validation failure in
// this package. The more specific sentinels below all wrap it, so callers
// can either test for a precise condition or just
// errors.Is(err, geoplot.ErrInvalidInput).
var ErrInvalidInput = errors.New("geoplot: invalid input")

var (
	// ErrEmptyData indicates a dataset with no rows.
	ErrEmptyData = fmt.Errorf("%w: dataset has no rows", ErrInvalidInput)

	// ErrNoNumericColumn indicates a dataset with no column of numeric values,
	// so no direction column could be chosen.
	ErrNoNumericColumn = fmt.Errorf("%w: dataset has no numeric column", ErrInvalidInput)

	// ErrUnknownColumn indicates an explicitly named column that is not
	// present in the dataset.
	ErrUnknownColumn = fmt.Errorf("%w: no such column", ErrInvalidInput)

	// ErrNonNumericColumn indicates an explicitly named direction column whose
	// values are not numbers.
	ErrNonNumericColumn = fmt.Errorf("%w: column is not numeric", ErrInvalidInput)

	// ErrBadBinWidth indicates a zero or negative bin width.
	ErrBadBinWidth = fmt.Errorf("%w: bin width must be positive", ErrInvalidInput)

	// ErrBadOption indicates a display option outside its valid range.
	ErrBadOption = fmt.Errorf("%w: display option out of range", ErrInvalidInput)
)
