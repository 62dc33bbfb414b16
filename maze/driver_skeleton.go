// SPDX-License-Identifier: MIT
// Package: mazegrid/maze
//
// driver_skeleton.go — the "fixed skeleton, randomized entities" policy.

package maze

import (
	"errors"
	"fmt"

	"github.com/mazegrid/mazegrid/grid"
	"github.com/mazegrid/mazegrid/place"
	"github.com/mazegrid/mazegrid/rng"
	"github.com/mazegrid/mazegrid/textgrid"
)

// SkeletonDriver re-places entities on a fixed, caller-supplied wall layout.
// The skeleton is decoded once at construction; every Generate call works on
// a fresh clone, so walls never drift between calls.
type SkeletonDriver struct {
	req      Request
	skeleton *grid.Grid
}

// NewSkeletonDriver decodes text under the default wall/floor alphabet and
// validates it as a connected skeleton; entity slots come from req.Entities,
// not from the text. Dimensions and topology knobs of req are ignored — the
// skeleton is the topology. Decode failures pass through as
// textgrid.ErrMalformedInput / textgrid.ErrDisconnected; bad retry bounds or
// entity kinds are ErrInvalidArgument.
func NewSkeletonDriver(text string, req Request) (*SkeletonDriver, error) {
	g, err := textgrid.Decode(text, textgrid.DefaultAlphabet(), textgrid.WithConnectivityCheck())
	if err != nil {
		return nil, err
	}

	if req.MaxPlaceRetries == 0 {
		req.MaxPlaceRetries = DefaultMaxPlaceRetries
	}
	if req.MaxPlaceRetries < 1 {
		return nil, fmt.Errorf("maze: retry bound %d: %w", req.MaxPlaceRetries, ErrInvalidArgument)
	}
	req.Height, req.Width = g.Height(), g.Width()
	if _, err = req.Alphabet(); err != nil {
		return nil, err
	}

	return &SkeletonDriver{req: req, skeleton: g}, nil
}

// Generate clones the skeleton and runs only the placement solver against its
// floor cells. Placement retries reshuffle within place.Place; there is no
// topology to regenerate, so exhaustion surfaces immediately.
func (d *SkeletonDriver) Generate(seed int64) (*Maze, error) {
	g := d.skeleton.Clone()
	src := rng.New(seed)

	placed, err := place.Place(src, g, d.req.Entities,
		place.WithMetric(d.req.Metric), place.WithAttempts(d.req.MaxPlaceRetries))
	switch {
	case err == nil:
		return &Maze{Grid: g, Entities: placed, Seed: seed, Policy: PolicySkeleton}, nil
	case errors.Is(err, place.ErrExhausted):
		return nil, &ExhaustedError{Seed: seed, LastSeed: seed, Attempts: 1}
	default:
		return nil, asInvalidArgument(err)
	}
}
