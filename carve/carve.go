// SPDX-License-Identifier: MIT
// Package: mazegrid/carve
//
// carve.go — randomized frontier carving over an odd-aligned wall lattice.
//
// Canonical model:
//   - Lattice nodes are corridor-width×corridor-width cell blocks separated by
//     one-cell walls; with corridor width 1 this is the classic odd lattice.
//   - Frontier carving (generalized Prim): start from one node, keep a frontier
//     of (visited node → unvisited node) edges, repeatedly carve a uniformly
//     random frontier edge. Each accepted edge extends the single connected
//     component by exactly one node, so connectivity holds by construction.
//   - Rooms are carved first as solid floor blocks aligned to the lattice; the
//     frontier pass then claims their nodes like any others, which attaches
//     every room to the corridor network.
//
// Determinism:
//   - Stable frontier storage with swap-remove selection driven solely by the
//     supplied rng.Source; stable scan order for loop opening and border
//     opening. Same seed + options ⇒ identical grid.

package carve

import (
	"fmt"

	"github.com/mazegrid/mazegrid/grid"
	"github.com/mazegrid/mazegrid/rng"
)

const methodCarve = "Carve"

// lattice maps node coordinates (i,j) onto cell space for a given corridor
// width. Node (i,j) occupies the cw×cw cell block whose top-left is
// (1+i*stride, 1+j*stride) with stride = cw+1.
type lattice struct {
	cw, stride   int
	nRows, nCols int
}

func newLattice(height, width, corridorWidth int) lattice {
	stride := corridorWidth + 1
	l := lattice{cw: corridorWidth, stride: stride}
	if h := height - 2 - corridorWidth; h >= 0 {
		l.nRows = h/stride + 1
	}
	if w := width - 2 - corridorWidth; w >= 0 {
		l.nCols = w/stride + 1
	}
	return l
}

// cellRow returns the top cell row of lattice row i.
func (l lattice) cellRow(i int) int { return 1 + i*l.stride }

// cellCol returns the left cell column of lattice column j.
func (l lattice) cellCol(j int) int { return 1 + j*l.stride }

// node is a lattice coordinate.
type node struct{ i, j int }

// frontierEdge records a carvable transition from a visited node to an
// unvisited target node.
type frontierEdge struct{ from, to node }

// nodeOffsets is the fixed 4-neighborhood in lattice space (N, E, S, W).
var nodeOffsets = [4]node{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Carve generates a connected maze topology of the given cell dimensions.
// All randomness is drawn from src; options tune rooms, loops, corridor width
// and border behavior. See the package documentation for the error taxonomy.
//
// Complexity: O(H×W) time and memory.
func Carve(src *rng.Source, height, width int, opts ...Option) (*grid.Grid, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", methodCarve, ErrNeedRandSource)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate request-derived parameters early (fail fast, no side effects).
	if cfg.loopProb < 0 || cfg.loopProb > 1 {
		return nil, fmt.Errorf("%s: loop probability %.6f not in [0,1]: %w",
			methodCarve, cfg.loopProb, ErrInvalidProbability)
	}
	if cfg.roomCount < 0 || (cfg.roomCount > 0 && (cfg.roomMin < 1 || cfg.roomMax < cfg.roomMin)) {
		return nil, fmt.Errorf("%s: rooms count=%d size=[%d,%d]: %w",
			methodCarve, cfg.roomCount, cfg.roomMin, cfg.roomMax, ErrBadRoomSpec)
	}

	lat := newLattice(height, width, cfg.corridorWidth)
	if lat.nRows < 1 || lat.nCols < 1 {
		return nil, fmt.Errorf("%s: %dx%d cannot fit corridor width %d: %w",
			methodCarve, height, width, cfg.corridorWidth, ErrTooSmall)
	}

	g, err := grid.New(height, width)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCarve, err)
	}

	// 2) Room overlay before corridor carving.
	if cfg.roomCount > 0 {
		if err = overlayRooms(src, g, lat, cfg); err != nil {
			return nil, err
		}
	}

	// 3) Frontier carving from a uniformly random start node.
	if err = carveCorridors(src, g, lat); err != nil {
		return nil, err
	}

	// 4) Loop opening over remaining redundant interior walls.
	if cfg.loopProb > 0 {
		openLoops(src, g, cfg.loopProb)
	}

	// 5) Border opening, if requested.
	if cfg.openBorder {
		openBorder(g)
	}

	// 6) Connectivity postcondition: every walkable cell reachable.
	if !cfg.allowSplit && !g.Connected() {
		return nil, fmt.Errorf("%s: unreachable floor cell: %w", methodCarve, ErrConstructFailed)
	}
	return g, nil
}

// carveCorridors runs the frontier pass over the whole lattice.
func carveCorridors(src *rng.Source, g *grid.Grid, lat lattice) error {
	visited := make([]bool, lat.nRows*lat.nCols)
	idx := func(n node) int { return n.i*lat.nCols + n.j }
	inLattice := func(n node) bool {
		return n.i >= 0 && n.i < lat.nRows && n.j >= 0 && n.j < lat.nCols
	}

	si, err := src.IntN(0, lat.nRows)
	if err != nil {
		return fmt.Errorf("%s: start row: %w", methodCarve, err)
	}
	sj, err := src.IntN(0, lat.nCols)
	if err != nil {
		return fmt.Errorf("%s: start col: %w", methodCarve, err)
	}

	start := node{si, sj}
	visited[idx(start)] = true
	carveNode(g, lat, start)

	frontier := make([]frontierEdge, 0, lat.nRows*lat.nCols)
	pushNeighbors := func(from node) {
		for _, d := range nodeOffsets {
			to := node{from.i + d.i, from.j + d.j}
			if inLattice(to) && !visited[idx(to)] {
				frontier = append(frontier, frontierEdge{from: from, to: to})
			}
		}
	}
	pushNeighbors(start)

	for len(frontier) > 0 {
		k, err := src.IntN(0, len(frontier))
		if err != nil {
			return fmt.Errorf("%s: frontier pick: %w", methodCarve, err)
		}
		edge := frontier[k]
		// Swap-remove keeps selection O(1) and order-independent of slice growth.
		frontier[k] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if visited[idx(edge.to)] {
			continue // claimed since the edge was queued
		}
		visited[idx(edge.to)] = true
		carveNode(g, lat, edge.to)
		carveBetween(g, lat, edge.from, edge.to)
		pushNeighbors(edge.to)
	}
	return nil
}

// carveNode floors the cw×cw cell block of n. Already-floor cells (room
// interiors) are untouched.
func carveNode(g *grid.Grid, lat lattice, n node) {
	r0, c0 := lat.cellRow(n.i), lat.cellCol(n.j)
	for r := r0; r < r0+lat.cw; r++ {
		for c := c0; c < c0+lat.cw; c++ {
			_ = g.SetFloor(grid.Coord{Row: r, Col: c})
		}
	}
}

// carveBetween floors the one-cell wall strip separating two lattice-adjacent
// nodes.
func carveBetween(g *grid.Grid, lat lattice, a, b node) {
	switch {
	case a.i == b.i: // horizontal neighbors: one column, cw rows
		j := a.j
		if b.j < a.j {
			j = b.j
		}
		col := lat.cellCol(j) + lat.cw
		r0 := lat.cellRow(a.i)
		for r := r0; r < r0+lat.cw; r++ {
			_ = g.SetFloor(grid.Coord{Row: r, Col: col})
		}
	default: // vertical neighbors: one row, cw columns
		i := a.i
		if b.i < a.i {
			i = b.i
		}
		row := lat.cellRow(i) + lat.cw
		c0 := lat.cellCol(a.j)
		for c := c0; c < c0+lat.cw; c++ {
			_ = g.SetFloor(grid.Coord{Row: row, Col: c})
		}
	}
}

// openLoops removes interior walls that separate two walkable cells with
// probability p each, in a fixed row-major scan. Removing such a wall adds a
// cycle and can never disconnect the maze.
func openLoops(src *rng.Source, g *grid.Grid, p float64) {
	for r := 1; r < g.Height()-1; r++ {
		for c := 1; c < g.Width()-1; c++ {
			at := grid.Coord{Row: r, Col: c}
			if g.StateAt(at) != grid.Wall {
				continue
			}
			horiz := g.StateAt(grid.Coord{Row: r, Col: c - 1}) != grid.Wall &&
				g.StateAt(grid.Coord{Row: r, Col: c + 1}) != grid.Wall
			vert := g.StateAt(grid.Coord{Row: r - 1, Col: c}) != grid.Wall &&
				g.StateAt(grid.Coord{Row: r + 1, Col: c}) != grid.Wall
			if !horiz && !vert {
				continue
			}
			if src.Float64() < p {
				_ = g.SetFloor(at)
			}
		}
	}
}

// openBorder floors every non-corner border cell whose inward neighbor is
// walkable, keeping each opened cell attached to the interior component.
func openBorder(g *grid.Grid) {
	h, w := g.Height(), g.Width()
	for c := 1; c < w-1; c++ {
		if g.StateAt(grid.Coord{Row: 1, Col: c}) != grid.Wall {
			_ = g.SetFloor(grid.Coord{Row: 0, Col: c})
		}
		if g.StateAt(grid.Coord{Row: h - 2, Col: c}) != grid.Wall {
			_ = g.SetFloor(grid.Coord{Row: h - 1, Col: c})
		}
	}
	for r := 1; r < h-1; r++ {
		if g.StateAt(grid.Coord{Row: r, Col: 1}) != grid.Wall {
			_ = g.SetFloor(grid.Coord{Row: r, Col: 0})
		}
		if g.StateAt(grid.Coord{Row: r, Col: w - 2}) != grid.Wall {
			_ = g.SetFloor(grid.Coord{Row: r, Col: w - 1})
		}
	}
}
