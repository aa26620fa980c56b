package caravel

import "errors"

// Sentinel errors returned by Series and GroupBy operations.
// Callers can match them with errors.Is; the wrapped message carries
// the offending value and valid range.
var (
	// ErrInvalidArgument is returned for a nil required argument, a
	// size mismatch between two Series, or an index entry that is out
	// of range at construction or in WithIndex.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned by At for a position outside [0, Len()).
	ErrOutOfRange = errors.New("position out of range")

	// ErrEmptySeries is returned by a statistic invoked on a Series
	// that is too short for it (empty, or single-element for Var/Std).
	ErrEmptySeries = errors.New("series is empty")

	// ErrNotNumeric is returned when an element cannot be coerced to
	// float64 during a statistic.
	ErrNotNumeric = errors.New("series is not numeric")
)
