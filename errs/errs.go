// Package errs defines the sentinel errors returned across ehrlens.
//
// Call sites wrap these with additional context using fmt.Errorf and %w, so
// callers should compare with errors.Is rather than ==. Every input-related
// sentinel is reported together with ErrInvalidInput, which makes
//
//	errors.Is(err, errs.ErrInvalidInput)
//
// a reliable catch-all for "the caller passed something unusable".
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the root of every input validation failure.
	ErrInvalidInput = errors.New("invalid input")

	// ErrColumnNotFound indicates a requested column is not present in a table.
	ErrColumnNotFound = errors.New("column not found")
	// ErrDuplicateColumn indicates a column name appears more than once in a table header.
	ErrDuplicateColumn = errors.New("duplicate column")
	// ErrEmptyColumns indicates an empty column list was passed to a lookup.
	ErrEmptyColumns = errors.New("no columns requested")
	// ErrRowWidth indicates a table has more time-point columns than a fit can use.
	ErrRowWidth = errors.New("row has too many time points")
	// ErrInsufficientPoints indicates too few points for the requested polynomial degree.
	ErrInsufficientPoints = errors.New("insufficient points for fit")
	// ErrNoObservations indicates nothing was left to plot after dropping missing values.
	ErrNoObservations = errors.New("no observations")

	// ErrDegenerateInput indicates a constant-valued array was passed to the marker scaler.
	ErrDegenerateInput = errors.New("degenerate input: all values are equal")

	// ErrUnsupportedCompression indicates an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression")
)

// Invalid wraps kind together with ErrInvalidInput and a formatted detail message.
//
// Both sentinels survive errors.Is:
//
//	err := errs.Invalid(errs.ErrColumnNotFound, "column %q", "AGE")
//	errors.Is(err, errs.ErrInvalidInput)   // true
//	errors.Is(err, errs.ErrColumnNotFound) // true
func Invalid(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidInput, kind, fmt.Sprintf(format, args...))
}
