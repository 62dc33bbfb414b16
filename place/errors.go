package place

import "errors"

var (
	// ErrInvalidSpec indicates a malformed entity specification: duplicate
	// kinds, count < 1, or negative minimum separation. Never retried.
	ErrInvalidSpec = errors.New("place: invalid entity spec")
	// ErrExhausted indicates no valid assignment was found within the bounded
	// number of attempts on this grid. The caller may retry on a fresh grid.
	ErrExhausted = errors.New("place: placement attempts exhausted")
	// ErrNeedRandSource indicates Place was invoked with a nil rng.Source.
	ErrNeedRandSource = errors.New("place: rng source is required")
)
