// Package grid defines the maze grid data model: a rectangular, row-major
// field of cells that are walls, floor, or entity markers.
//
// What:
//
//   - Grid wraps an H×W cell field with bounds-checked access; dimensions are
//     immutable after construction.
//   - Coord is a value-type (row, col) pair; the package never hands out
//     pointers into the cell field.
//   - ConnectedComponents performs a 4-connected BFS flood fill over walkable
//     cells (floor and entities), which is the connectivity postcondition used
//     by the carver and the text codec.
//
// Invariants:
//
//   - Every cell is exactly one of {Wall, Floor, Entity(kind)}.
//   - Height and Width are ≥ 1 and never change.
//
// Errors:
//
//   - ErrBadDimensions: New called with a non-positive height or width.
//   - ErrOutOfBounds: coordinate access outside the field.
package grid
