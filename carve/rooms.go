// SPDX-License-Identifier: MIT
// Package: mazegrid/carve
//
// rooms.go — rectangular room overlay carved before the corridor pass.

package carve

import (
	"fmt"

	"github.com/mazegrid/mazegrid/grid"
	"github.com/mazegrid/mazegrid/rng"
)

// roomRect is a room footprint in lattice-node units.
type roomRect struct {
	i, j int // top-left node
	a, b int // node span (rows, cols)
}

// intersectsPadded reports overlap between r and o with a one-node margin, so
// a wall always remains between distinct rooms.
func (r roomRect) intersectsPadded(o roomRect) bool {
	return r.i-1 <= o.i+o.a && r.i+r.a >= o.i-1 &&
		r.j-1 <= o.j+o.b && r.j+r.b >= o.j-1
}

// sizeToNodes converts a requested side length in cells to a node span for
// the given lattice: a nodes cover a*cw + (a-1) cells.
func sizeToNodes(size int, lat lattice) int {
	n := (size + 1) / lat.stride
	if n < 1 {
		n = 1
	}
	return n
}

// overlayRooms carves up to cfg.roomCount non-overlapping rooms as solid
// floor blocks aligned to the lattice. Placement is rejection-sampled with a
// bounded attempt budget per room; rooms that cannot be placed are skipped.
// Returns ErrRoomTooLarge when even the minimum size cannot fit.
func overlayRooms(src *rng.Source, g *grid.Grid, lat lattice, cfg config) error {
	minA := sizeToNodes(cfg.roomMin, lat)
	if minA > lat.nRows || minA > lat.nCols {
		return fmt.Errorf("%s: room min size %d exceeds %dx%d interior: %w",
			methodCarve, cfg.roomMin, g.Height(), g.Width(), ErrRoomTooLarge)
	}

	var placed []roomRect
	for n := 0; n < cfg.roomCount; n++ {
		for attempt := 0; attempt < roomPlaceAttempts; attempt++ {
			size, err := src.IntN(cfg.roomMin, cfg.roomMax+1)
			if err != nil {
				return fmt.Errorf("%s: room size: %w", methodCarve, err)
			}
			a := sizeToNodes(size, lat)
			if a > lat.nRows || a > lat.nCols {
				continue // this draw does not fit; smaller draws may
			}
			i, err := src.IntN(0, lat.nRows-a+1)
			if err != nil {
				return fmt.Errorf("%s: room row: %w", methodCarve, err)
			}
			j, err := src.IntN(0, lat.nCols-a+1)
			if err != nil {
				return fmt.Errorf("%s: room col: %w", methodCarve, err)
			}

			r := roomRect{i: i, j: j, a: a, b: a}
			overlaps := false
			for _, o := range placed {
				if r.intersectsPadded(o) {
					overlaps = true
					break
				}
			}
			if overlaps {
				continue
			}
			carveRoom(g, lat, r)
			placed = append(placed, r)
			break
		}
	}
	return nil
}

// carveRoom floors the full cell rectangle of r, including the internal wall
// strips between the nodes it spans.
func carveRoom(g *grid.Grid, lat lattice, r roomRect) {
	r0, c0 := lat.cellRow(r.i), lat.cellCol(r.j)
	r1 := lat.cellRow(r.i+r.a-1) + lat.cw - 1
	c1 := lat.cellCol(r.j+r.b-1) + lat.cw - 1
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			_ = g.SetFloor(grid.Coord{Row: row, Col: col})
		}
	}
}
