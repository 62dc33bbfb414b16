// SPDX-License-Identifier: MIT
// Package: mazegrid/place
//
// place.go — randomized greedy placement with a bounded retry loop.
//
// Contract:
//   - Input: a carved grid plus the ordered entity specs; output: the list of
//     chosen coordinates. The grid is mutated (Floor → Entity) only on success.
//   - A single attempt shuffles the floor pool once and claims greedily; the
//     attempt fails if the pool runs out before a spec's count is met.
//   - Attempts are retried with a fresh shuffle up to the configured bound,
//     then ErrExhausted is returned. Per-attempt failures never escape.
//
// Determinism:
//   - The floor pool is gathered in row-major order and shuffled only through
//     the supplied rng.Source, so a fixed seed replays the exact search.

package place

import (
	"fmt"

	"github.com/mazegrid/mazegrid/grid"
	"github.com/mazegrid/mazegrid/rng"
)

const methodPlace = "Place"

// DefaultAttempts bounds per-grid placement retries when the caller does not
// override it.
const DefaultAttempts = 10

// Option customizes a single Place invocation.
type Option func(*config)

type config struct {
	metric   Metric
	attempts int
}

// WithMetric selects the separation metric (default Manhattan).
func WithMetric(m Metric) Option {
	return func(c *config) { c.metric = m }
}

// WithAttempts bounds the number of shuffled attempts on this grid.
// Panics on n < 1: a non-positive bound would mean an unconditional failure.
func WithAttempts(n int) Option {
	if n < 1 {
		panic("place: WithAttempts(n<1)")
	}
	return func(c *config) { c.attempts = n }
}

// Place assigns every spec onto floor cells of g, converting the chosen cells
// to entities. On success it returns the placements in plan order; on failure
// the grid is left untouched and the error wraps ErrExhausted (search failed)
// or ErrInvalidSpec (malformed request).
//
// Complexity: O(attempts × #floor × #placed) worst case.
func Place(src *rng.Source, g *grid.Grid, specs []Spec, opts ...Option) ([]Placement, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", methodPlace, ErrNeedRandSource)
	}

	cfg := config{metric: Manhattan, attempts: DefaultAttempts}
	for _, opt := range opts {
		opt(&cfg)
	}

	plan, err := planOrder(specs)
	if err != nil {
		return nil, err
	}
	if len(plan) == 0 {
		return nil, nil // nothing to place is trivially satisfied
	}

	pool := g.FloorCells()

	var placed []Placement
	for attempt := 0; attempt < cfg.attempts; attempt++ {
		placed = tryOnce(src, pool, plan, cfg.metric)
		if placed != nil {
			break
		}
	}
	if placed == nil {
		return nil, fmt.Errorf("%s: %d attempts on %d floor cells: %w",
			methodPlace, cfg.attempts, len(pool), ErrExhausted)
	}

	// Commit only after the full assignment is known to be valid.
	for _, p := range placed {
		if err := g.SetEntity(p.At, p.Kind); err != nil {
			return nil, fmt.Errorf("%s: SetEntity(%v): %w", methodPlace, p.At, err)
		}
	}
	return placed, nil
}

// planOrder validates the specs and returns them in deterministic placement
// order: descending MinSeparation, then descending Count, then request order.
func planOrder(specs []Spec) ([]Spec, error) {
	seen := make(map[rune]struct{}, len(specs))
	for _, s := range specs {
		if s.Count < 1 {
			return nil, fmt.Errorf("%s: kind %q count=%d: %w", methodPlace, s.Kind, s.Count, ErrInvalidSpec)
		}
		if s.MinSeparation < 0 {
			return nil, fmt.Errorf("%s: kind %q separation=%d: %w", methodPlace, s.Kind, s.MinSeparation, ErrInvalidSpec)
		}
		if _, dup := seen[s.Kind]; dup {
			return nil, fmt.Errorf("%s: duplicate kind %q: %w", methodPlace, s.Kind, ErrInvalidSpec)
		}
		seen[s.Kind] = struct{}{}
	}

	plan := make([]Spec, len(specs))
	copy(plan, specs)
	// Insertion sort keeps the tie-break stable w.r.t. request order without
	// pulling in sort.SliceStable's comparator allocations.
	for i := 1; i < len(plan); i++ {
		for k := i; k > 0 && tighter(plan[k], plan[k-1]); k-- {
			plan[k], plan[k-1] = plan[k-1], plan[k]
		}
	}
	return plan, nil
}

// tighter reports whether a must be placed before b.
func tighter(a, b Spec) bool {
	if a.MinSeparation != b.MinSeparation {
		return a.MinSeparation > b.MinSeparation
	}
	return a.Count > b.Count
}

// tryOnce runs a single greedy attempt over a freshly shuffled pool.
// Returns nil when the pool is exhausted before the plan is satisfied.
func tryOnce(src *rng.Source, pool []grid.Coord, plan []Spec, metric Metric) []Placement {
	order := src.Perm(len(pool))
	used := make([]bool, len(pool))
	placed := make([]Placement, 0, planTotal(plan))

	for _, spec := range plan {
		need := spec.Count
		for _, pi := range order {
			if need == 0 {
				break
			}
			if used[pi] {
				continue
			}
			at := pool[pi]
			if !separated(at, spec.MinSeparation, placed, plan, metric) {
				continue
			}
			used[pi] = true
			placed = append(placed, Placement{Kind: spec.Kind, At: at})
			need--
		}
		if need > 0 {
			return nil // pool exhausted for this spec: attempt failed
		}
	}
	return placed
}

// separated checks the candidate against every placed marker: the pairwise
// distance must meet both the candidate's and the other marker's minimum.
func separated(at grid.Coord, minSep int, placed []Placement, plan []Spec, metric Metric) bool {
	for _, p := range placed {
		req := minSep
		if other := sepOf(plan, p.Kind); other > req {
			req = other
		}
		if req > 0 && metric.Distance(at, p.At) < req {
			return false
		}
	}
	return true
}

func sepOf(plan []Spec, kind rune) int {
	for _, s := range plan {
		if s.Kind == kind {
			return s.MinSeparation
		}
	}
	return 0
}

func planTotal(plan []Spec) int {
	n := 0
	for _, s := range plan {
		n += s.Count
	}
	return n
}
