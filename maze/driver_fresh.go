// SPDX-License-Identifier: MIT
// Package: mazegrid/maze
//
// driver_fresh.go — the "generate fresh" policy: carve, place, retry.
//
// Retry model (bounded and fully deterministic):
//   - Topology attempt k uses seed rng.DeriveSeed(seed, k) — a counter-based
//     reseed, never fresh entropy, so retries replay for a fixed seed.
//   - Each topology gets MaxPlaceRetries shuffled placement attempts (handled
//     inside place.Place); exhaustion discards the grid and re-carves.
//   - After MaxAttempts topologies the call fails with *ExhaustedError.

package maze

import (
	"errors"
	"fmt"

	"github.com/mazegrid/mazegrid/carve"
	"github.com/mazegrid/mazegrid/place"
	"github.com/mazegrid/mazegrid/rng"
)

// FreshDriver runs the full carve-then-place pipeline per Generate call.
type FreshDriver struct {
	req Request
}

// NewFreshDriver validates the request once and returns the driver.
// Invalid requests fail fast with ErrInvalidArgument.
func NewFreshDriver(req Request) (*FreshDriver, error) {
	norm, err := req.normalize()
	if err != nil {
		return nil, err
	}
	// Surface carve-level validation (lattice fit, room sizes) at construction
	// instead of on the first Generate: probe with a throwaway source.
	if _, err = carve.Carve(rng.New(1), norm.Height, norm.Width, norm.carveOptions()...); err != nil {
		return nil, asInvalidArgument(err)
	}
	if _, err = norm.Alphabet(); err != nil {
		return nil, err
	}
	return &FreshDriver{req: norm}, nil
}

// Generate produces a new Maze for the given seed. See the package docs for
// the retry model; errors are ErrInvalidArgument (entity specs) or
// *ExhaustedError wrapping ErrPlacementExhausted.
func (d *FreshDriver) Generate(seed int64) (*Maze, error) {
	var lastSeed int64
	for attempt := 0; attempt < d.req.MaxAttempts; attempt++ {
		lastSeed = rng.DeriveSeed(seed, uint64(attempt))
		src := rng.New(lastSeed)

		g, err := carve.Carve(src, d.req.Height, d.req.Width, d.req.carveOptions()...)
		if err != nil {
			return nil, asInvalidArgument(fmt.Errorf("maze: attempt %d: %w", attempt, err))
		}

		placed, err := place.Place(src, g, d.req.Entities,
			place.WithMetric(d.req.Metric), place.WithAttempts(d.req.MaxPlaceRetries))
		switch {
		case err == nil:
			return &Maze{Grid: g, Entities: placed, Seed: seed, Policy: PolicyFresh}, nil
		case errors.Is(err, place.ErrExhausted):
			continue // discard this topology, re-carve with the next derived seed
		default:
			return nil, asInvalidArgument(err)
		}
	}
	return nil, &ExhaustedError{Seed: seed, LastSeed: lastSeed, Attempts: d.req.MaxAttempts}
}
