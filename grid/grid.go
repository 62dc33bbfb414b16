package grid

// Grid is a rectangular, row-major cell field with immutable dimensions.
// The zero value is not usable; construct with New.
type Grid struct {
	height, width int
	cells         []Cell // row-major, len == height*width
}

// New constructs an all-Wall grid of the given dimensions.
// Returns ErrBadDimensions when height or width < 1.
//
// Complexity: O(H×W) time and memory.
func New(height, width int) (*Grid, error) {
	if height < 1 || width < 1 {
		return nil, ErrBadDimensions
	}
	return &Grid{
		height: height,
		width:  width,
		cells:  make([]Cell, height*width),
	}, nil
}

// Height reports the number of rows.
func (g *Grid) Height() int { return g.height }

// Width reports the number of columns.
func (g *Grid) Width() int { return g.width }

// InBounds reports whether c lies within the field.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// index maps a coordinate to its row-major position: row*Width + col.
func (g *Grid) index(c Coord) int {
	return c.Row*g.width + c.Col
}

// coordinate converts a row-major index back to a Coord.
func (g *Grid) coordinate(idx int) Coord {
	return Coord{Row: idx / g.width, Col: idx % g.width}
}

// At returns the cell at c, bounds-checked.
func (g *Grid) At(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return Cell{}, ErrOutOfBounds
	}
	return g.cells[g.index(c)], nil
}

// StateAt returns the state at c, treating out-of-bounds as Wall. The carver
// and codec use this to avoid border special-casing in neighbor scans.
func (g *Grid) StateAt(c Coord) CellState {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[g.index(c)].State
}

// SetWall marks c as a wall. Out-of-bounds coordinates return ErrOutOfBounds.
func (g *Grid) SetWall(c Coord) error { return g.set(c, Cell{State: Wall}) }

// SetFloor marks c as open floor.
func (g *Grid) SetFloor(c Coord) error { return g.set(c, Cell{State: Floor}) }

// SetEntity marks c as occupied by an entity of the given kind.
func (g *Grid) SetEntity(c Coord, kind rune) error {
	return g.set(c, Cell{State: Entity, Kind: kind})
}

func (g *Grid) set(c Coord, cell Cell) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	g.cells[g.index(c)] = cell
	return nil
}

// Clone returns a deep copy. Mutating the clone never affects the original.
// Complexity: O(H×W).
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{height: g.height, width: g.width, cells: cells}
}

// Equal reports whether two grids have identical dimensions and cell layout.
// Complexity: O(H×W).
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.height != o.height || g.width != o.width {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// FloorCells returns the coordinates of all Floor cells in row-major order.
// Entity cells are excluded: they are walkable but already occupied.
// Complexity: O(H×W) time, O(#floor) space.
func (g *Grid) FloorCells() []Coord {
	out := make([]Coord, 0, len(g.cells)/2)
	for i, c := range g.cells {
		if c.State == Floor {
			out = append(out, g.coordinate(i))
		}
	}
	return out
}

// WalkableCount reports the number of floor and entity cells.
// Complexity: O(H×W).
func (g *Grid) WalkableCount() int {
	n := 0
	for _, c := range g.cells {
		if c.Walkable() {
			n++
		}
	}
	return n
}
