// SPDX-License-Identifier: MIT
// Package: mazegrid/carve
//
// options.go — functional options for the carver.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors panic only on programmer error (values no caller
//     request can produce); request-derived values are validated by Carve
//     itself and surface as sentinel errors.
//   - No hidden globals; everything flows through the resolved config.

package carve

// Deterministic defaults (named, no magic numbers).
const (
	defaultCorridorWidth = 1
	defaultLoopProb      = 0.0
	defaultRoomMin       = 3
	defaultRoomMax       = 7

	// roomPlaceAttempts bounds the rejection sampling per requested room;
	// rooms that cannot be placed without overlap are skipped, so the room
	// count is an upper bound on density, not an exact contract.
	roomPlaceAttempts = 10
)

// config aggregates all carver knobs. It is resolved once per Carve call and
// passed by value to the carving stages.
type config struct {
	corridorWidth int
	loopProb      float64
	roomCount     int
	roomMin       int
	roomMax       int
	openBorder    bool
	allowSplit    bool
}

// Option customizes a single Carve invocation.
type Option func(*config)

func defaultConfig() config {
	return config{
		corridorWidth: defaultCorridorWidth,
		loopProb:      defaultLoopProb,
		roomCount:     0,
		roomMin:       defaultRoomMin,
		roomMax:       defaultRoomMax,
	}
}

// WithCorridorWidth sets the carved corridor thickness in cells (default 1).
// Walls between corridors remain exactly one cell thick. Panics on w < 1:
// corridor width is a library-level knob, not request input.
func WithCorridorWidth(w int) Option {
	if w < 1 {
		panic("carve: WithCorridorWidth(w<1)")
	}
	return func(c *config) { c.corridorWidth = w }
}

// WithLoopProbability sets the per-wall probability of opening a redundant
// wall after carving, introducing cycles. The value is validated by Carve
// (ErrInvalidProbability) because it arrives from caller requests.
func WithLoopProbability(p float64) Option {
	return func(c *config) { c.loopProb = p }
}

// WithRooms requests up to count non-overlapping rectangular rooms with side
// lengths drawn from [minSize, maxSize] cells. Validation happens in Carve:
// count < 0 or an inverted range is ErrBadRoomSpec; a minimum size that cannot
// fit the grid is ErrRoomTooLarge.
func WithRooms(count, minSize, maxSize int) Option {
	return func(c *config) {
		c.roomCount = count
		c.roomMin = minSize
		c.roomMax = maxSize
	}
}

// WithOpenBorder opens border cells that touch walkable interior cells.
// Without it the outer border is always wall.
func WithOpenBorder() Option {
	return func(c *config) { c.openBorder = true }
}

// WithDisconnectedOK skips the connectivity postcondition check. Intended for
// callers that deliberately compose disconnected regions.
func WithDisconnectedOK() Option {
	return func(c *config) { c.allowSplit = true }
}
