// Package grid defines core types for the mazegrid cell field.
package grid

// CellState enumerates the three states a cell can be in.
type CellState uint8

const (
	// Wall is an impassable cell; freshly constructed grids are all Wall.
	Wall CellState = iota
	// Floor is an open, walkable cell.
	Floor
	// Entity is a walkable cell occupied by a placed entity marker.
	Entity
)

// String renders the state for debug output.
func (s CellState) String() string {
	switch s {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case Entity:
		return "entity"
	}
	return "unknown"
}

// Cell is the value stored per grid position. Kind is meaningful only when
// State == Entity and holds the entity's character tag.
type Cell struct {
	State CellState
	Kind  rune
}

// Walkable reports whether the cell can be traversed (floor or entity).
func (c Cell) Walkable() bool {
	return c.State == Floor || c.State == Entity
}

// Coord is a 0-indexed (row, col) grid position. It is always passed by
// value; no API exposes a pointer into the cell field.
type Coord struct {
	Row, Col int
}

// neighborOffsets4 is the 4-connectivity stencil (N, E, S, W) used by the
// flood fill. Order is fixed to keep component traversal deterministic.
var neighborOffsets4 = [4]Coord{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
