package grid

import "errors"

var (
	// ErrBadDimensions indicates a grid was requested with height or width < 1.
	ErrBadDimensions = errors.New("grid: height and width must be at least 1")
	// ErrOutOfBounds indicates a coordinate outside the grid field.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)
