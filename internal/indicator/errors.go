package indicator

import "errors"

var (
	// ErrInsufficientHistory is returned when a series is too short to fill the
	// long moving-average window.
	ErrInsufficientHistory = errors.New("insufficient data for analysis")

	// ErrMalformedSeries is returned by ValidateSeries for duplicate dates,
	// mixed ordering or negative values.
	ErrMalformedSeries = errors.New("malformed price series")

	// ErrDivisionByZero is returned when a ratio has a zero denominator.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidWindow is returned for non-positive window sizes.
	ErrInvalidWindow = errors.New("invalid indicator window")
)
