// SPDX-License-Identifier: MIT
// Package: mazegrid/carve
//
// errors.go — sentinel errors for the carve package.
//
// Error policy (explicit and strict):
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Implementations attach context via %w wrapping with the method tag.
//   - Carve never panics at runtime; option constructors may panic on
//     programmer error (nil/meaningless arguments).

package carve

import "errors"

// ErrTooSmall indicates the requested dimensions cannot fit the wall-lattice
// scheme for the configured corridor width (minimum is corridor+2 per axis).
// Classification: validation error; never retried.
var ErrTooSmall = errors.New("carve: dimensions too small for lattice scheme")

// ErrInvalidProbability indicates a loop probability outside the closed
// interval [0,1].
var ErrInvalidProbability = errors.New("carve: probability out of range")

// ErrBadRoomSpec indicates a negative room count or an inverted or
// non-positive room size range.
var ErrBadRoomSpec = errors.New("carve: invalid room specification")

// ErrRoomTooLarge indicates the minimum requested room size cannot fit inside
// the grid interior.
var ErrRoomTooLarge = errors.New("carve: requested room larger than grid")

// ErrNeedRandSource indicates Carve was invoked with a nil rng.Source.
var ErrNeedRandSource = errors.New("carve: rng source is required")

// ErrConstructFailed indicates the carver produced a grid violating its own
// connectivity postcondition. This is an internal invariant failure, surfaced
// instead of returning a corrupt maze.
var ErrConstructFailed = errors.New("carve: construction failed")
