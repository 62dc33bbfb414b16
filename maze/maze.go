package maze

import (
	"github.com/mazegrid/mazegrid/grid"
	"github.com/mazegrid/mazegrid/place"
	"github.com/mazegrid/mazegrid/textgrid"
)

// Policy names reported on generated mazes.
const (
	PolicyFresh    = "fresh"
	PolicySkeleton = "fixed-skeleton"
	PolicyFixed    = "fixed"
)

// Maze is the immutable aggregate of one generation call: the final grid, the
// placed entities, the top-level seed, and the policy that produced it.
// Regeneration produces a new Maze; an existing one is never mutated.
type Maze struct {
	Grid     *grid.Grid
	Entities []place.Placement
	Seed     int64
	Policy   string
}

// Text encodes the maze's grid under the given alphabet.
func (m *Maze) Text(a textgrid.Alphabet) (string, error) {
	return textgrid.Encode(m.Grid, a)
}

// Driver is a named generation policy. Implementations hold no mutable state
// across calls beyond their immutable configuration.
type Driver interface {
	Generate(seed int64) (*Maze, error)
}
