package maze

import (
	"errors"
	"fmt"

	"github.com/mazegrid/mazegrid/carve"
	"github.com/mazegrid/mazegrid/place"
	"github.com/mazegrid/mazegrid/rng"
	"github.com/mazegrid/mazegrid/textgrid"
)

// Documented request defaults.
const (
	// DefaultMaxPlaceRetries bounds placement attempts per carved topology.
	DefaultMaxPlaceRetries = 10
	// DefaultMaxAttempts bounds the total number of carved topologies tried
	// before a Generate call gives up with ErrPlacementExhausted.
	DefaultMaxAttempts = 1000
	// DefaultRoomMin / DefaultRoomMax apply when RoomCount > 0 and the caller
	// left RoomSizeRange zero.
	DefaultRoomMin = 3
	DefaultRoomMax = 7
)

// Request bundles the parameters of a generation policy. Unset numeric fields
// take the documented defaults; see normalize.
type Request struct {
	Height int
	Width  int
	Seed   int64

	RoomCount     int
	RoomSizeRange [2]int
	// LoopProbability opens redundant walls with this probability, turning the
	// acyclic-by-default maze into a looped one. Must lie in [0,1].
	LoopProbability float64

	Entities []place.Spec
	// Metric selects the separation distance function (default Manhattan).
	Metric place.Metric

	// MaxPlaceRetries bounds placement attempts per topology (default 10).
	MaxPlaceRetries int
	// MaxAttempts bounds total topology regenerations (default 1000).
	MaxAttempts int
}

// normalize fills defaults and validates everything that can be rejected
// before any randomness is consumed. All failures wrap ErrInvalidArgument.
func (r Request) normalize() (Request, error) {
	if r.Height < 1 || r.Width < 1 {
		return r, fmt.Errorf("maze: dimensions %dx%d: %w", r.Height, r.Width, ErrInvalidArgument)
	}
	if r.LoopProbability < 0 || r.LoopProbability > 1 {
		return r, fmt.Errorf("maze: loop probability %.6f: %w", r.LoopProbability, ErrInvalidArgument)
	}
	if r.RoomCount < 0 {
		return r, fmt.Errorf("maze: room count %d: %w", r.RoomCount, ErrInvalidArgument)
	}
	if r.RoomCount > 0 && r.RoomSizeRange == [2]int{} {
		r.RoomSizeRange = [2]int{DefaultRoomMin, DefaultRoomMax}
	}
	if r.MaxPlaceRetries == 0 {
		r.MaxPlaceRetries = DefaultMaxPlaceRetries
	}
	if r.MaxAttempts == 0 {
		r.MaxAttempts = DefaultMaxAttempts
	}
	if r.MaxPlaceRetries < 1 || r.MaxAttempts < 1 {
		return r, fmt.Errorf("maze: retry bounds %d/%d: %w", r.MaxPlaceRetries, r.MaxAttempts, ErrInvalidArgument)
	}
	return r, nil
}

// carveOptions translates the request into carver options.
func (r Request) carveOptions() []carve.Option {
	opts := []carve.Option{carve.WithLoopProbability(r.LoopProbability)}
	if r.RoomCount > 0 {
		opts = append(opts, carve.WithRooms(r.RoomCount, r.RoomSizeRange[0], r.RoomSizeRange[1]))
	}
	return opts
}

// Alphabet builds the identity alphabet over the request's entity kinds:
// each kind renders as its own character on top of the default wall/floor set.
func (r Request) Alphabet() (textgrid.Alphabet, error) {
	kinds := make([]rune, 0, len(r.Entities))
	for _, s := range r.Entities {
		kinds = append(kinds, s.Kind)
	}
	a, err := textgrid.DefaultAlphabet().WithKinds(kinds...)
	if err != nil {
		return textgrid.Alphabet{}, fmt.Errorf("maze: %v: %w", err, ErrInvalidArgument)
	}
	return a, nil
}

// asInvalidArgument reclassifies validation sentinels from the inner layers
// (carve, place, rng) as the user-visible ErrInvalidArgument while keeping
// the inner message.
func asInvalidArgument(err error) error {
	switch {
	case errors.Is(err, carve.ErrTooSmall),
		errors.Is(err, carve.ErrInvalidProbability),
		errors.Is(err, carve.ErrBadRoomSpec),
		errors.Is(err, carve.ErrRoomTooLarge),
		errors.Is(err, place.ErrInvalidSpec),
		errors.Is(err, rng.ErrInvalidRange):
		return fmt.Errorf("%v: %w", err, ErrInvalidArgument)
	default:
		return err
	}
}
