// SPDX-License-Identifier: MIT
// Package: mazegrid/maze
//
// errors.go — the user-visible error taxonomy.
//
// Error policy:
//   - ErrInvalidArgument: malformed request; surfaced immediately, never retried.
//   - ErrPlacementExhausted: surfaced only after the bounded retry/regenerate
//     budget is spent; the wrapping ExhaustedError carries enough context to
//     reproduce the failure deterministically.
//   - textgrid.ErrMalformedInput passes through untouched for decode failures.

package maze

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a malformed generation request: non-positive
// dimensions, impossible room sizes, invalid probabilities, bad entity specs,
// or a non-injective alphabet.
var ErrInvalidArgument = errors.New("maze: invalid argument")

// ErrPlacementExhausted indicates no valid entity assignment was found within
// the bounded retry and regeneration budget.
var ErrPlacementExhausted = errors.New("maze: placement exhausted")

// ExhaustedError carries the diagnostics needed to reproduce an exhausted
// search: the top-level seed, the last derived topology seed, and the number
// of topologies attempted. It wraps ErrPlacementExhausted.
type ExhaustedError struct {
	Seed     int64 // top-level seed of the failed Generate call
	LastSeed int64 // last derived topology seed attempted
	Attempts int   // number of carved topologies tried
}

// Error implements the error interface.
func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("maze: placement exhausted after %d attempts (seed=%d, last derived seed=%d)",
		e.Attempts, e.Seed, e.LastSeed)
}

// Unwrap exposes the sentinel for errors.Is branching.
func (e *ExhaustedError) Unwrap() error { return ErrPlacementExhausted }
