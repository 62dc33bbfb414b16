// Package place defines entity specifications and separation metrics.
package place

import "github.com/mazegrid/mazegrid/grid"

// Spec describes one entity class in a placement request. It is supplied by
// the caller per generation call, consumed once, and never persisted.
type Spec struct {
	// Kind is the entity's character tag; it must be unique within a request.
	Kind rune
	// Count is the number of markers of this kind to place (>= 1).
	Count int
	// MinSeparation is the minimum distance, under the request's metric,
	// between any marker of this kind and every other placed marker.
	MinSeparation int
}

// Placement records one assigned marker.
type Placement struct {
	Kind rune
	At   grid.Coord
}

// Metric selects the distance function used for separation checks.
type Metric uint8

const (
	// Manhattan is |dr| + |dc| (default).
	Manhattan Metric = iota
	// Chebyshev is max(|dr|, |dc|).
	Chebyshev
)

// String renders the metric name for diagnostics.
func (m Metric) String() string {
	if m == Chebyshev {
		return "chebyshev"
	}
	return "manhattan"
}

// Distance evaluates the metric between two coordinates.
// Complexity: O(1).
func (m Metric) Distance(a, b grid.Coord) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	if m == Chebyshev {
		if dr > dc {
			return dr
		}
		return dc
	}
	return dr + dc
}
