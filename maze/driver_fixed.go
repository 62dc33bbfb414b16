// SPDX-License-Identifier: MIT
// Package: mazegrid/maze
//
// driver_fixed.go — the "fixed text maze" policy and ingestion validation.

package maze

import (
	"github.com/mazegrid/mazegrid/grid"
	"github.com/mazegrid/mazegrid/place"
	"github.com/mazegrid/mazegrid/textgrid"
)

// FixedDriver serves a fully authored maze: walls, floor, and entity markers
// all come from the text. Generate returns a fresh clone per call so callers
// can mutate their copy freely.
type FixedDriver struct {
	fixed    *grid.Grid
	entities []place.Placement
}

// NewFixedDriver decodes a complete maze under the given alphabet and
// validates connectivity. Errors pass through from textgrid.
func NewFixedDriver(text string, a textgrid.Alphabet) (*FixedDriver, error) {
	g, err := textgrid.Decode(text, a, textgrid.WithConnectivityCheck())
	if err != nil {
		return nil, err
	}

	var entities []place.Placement
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			at := grid.Coord{Row: r, Col: c}
			cell, _ := g.At(at)
			if cell.State == grid.Entity {
				entities = append(entities, place.Placement{Kind: cell.Kind, At: at})
			}
		}
	}
	return &FixedDriver{fixed: g, entities: entities}, nil
}

// Generate returns the authored maze. The seed is recorded for uniformity of
// the Driver contract but draws no randomness.
func (d *FixedDriver) Generate(seed int64) (*Maze, error) {
	entities := make([]place.Placement, len(d.entities))
	copy(entities, d.entities)
	return &Maze{Grid: d.fixed.Clone(), Entities: entities, Seed: seed, Policy: PolicyFixed}, nil
}

// Validate checks an externally authored text maze: it must parse under the
// alphabet and form a single connected walkable region. Returns nil when the
// text is ingestible, otherwise the textgrid sentinel describing the defect.
func Validate(text string, a textgrid.Alphabet) error {
	_, err := textgrid.Decode(text, a, textgrid.WithConnectivityCheck())
	return err
}
