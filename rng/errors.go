package rng

import "errors"

// ErrInvalidRange indicates IntN was called with an empty half-open interval
// (lo >= hi). Callers should branch with errors.Is.
var ErrInvalidRange = errors.New("rng: lo must be strictly less than hi")
