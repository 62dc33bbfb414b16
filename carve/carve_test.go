package carve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazegrid/mazegrid/carve"
	"github.com/mazegrid/mazegrid/grid"
	"github.com/mazegrid/mazegrid/rng"
)

// TestCarve_Validation covers the fail-fast sentinel errors.
func TestCarve_Validation(t *testing.T) {
	cases := []struct {
		name string
		h, w int
		opts []carve.Option
		err  error
	}{
		{"TooSmallHeight", 2, 9, nil, carve.ErrTooSmall},
		{"TooSmallWidth", 9, 2, nil, carve.ErrTooSmall},
		{"OneByOne", 1, 1, nil, carve.ErrTooSmall},
		{"NegativeLoopProb", 9, 9, []carve.Option{carve.WithLoopProbability(-0.1)}, carve.ErrInvalidProbability},
		{"LoopProbAboveOne", 9, 9, []carve.Option{carve.WithLoopProbability(1.5)}, carve.ErrInvalidProbability},
		{"NegativeRoomCount", 9, 9, []carve.Option{carve.WithRooms(-1, 3, 5)}, carve.ErrBadRoomSpec},
		{"InvertedRoomRange", 9, 9, []carve.Option{carve.WithRooms(1, 5, 3)}, carve.ErrBadRoomSpec},
		{"RoomLargerThanGrid", 9, 9, []carve.Option{carve.WithRooms(1, 50, 60)}, carve.ErrRoomTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := carve.Carve(rng.New(1), tc.h, tc.w, tc.opts...)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := carve.Carve(nil, 9, 9)
	assert.ErrorIs(t, err, carve.ErrNeedRandSource)
}

// TestCarve_Connectivity verifies the flood-fill postcondition over a spread
// of dimensions and seeds.
func TestCarve_Connectivity(t *testing.T) {
	dims := [][2]int{{3, 3}, {5, 5}, {5, 9}, {11, 7}, {21, 21}, {4, 6}}
	for _, d := range dims {
		for seed := int64(1); seed <= 5; seed++ {
			g, err := carve.Carve(rng.New(seed), d[0], d[1])
			require.NoErrorf(t, err, "Carve(%dx%d, seed=%d)", d[0], d[1], seed)
			assert.Truef(t, g.Connected(), "disconnected maze for %dx%d seed=%d", d[0], d[1], seed)
			assert.Greater(t, g.WalkableCount(), 0)
		}
	}
}

// TestCarve_BorderIsWall verifies the closed-border default.
func TestCarve_BorderIsWall(t *testing.T) {
	g, err := carve.Carve(rng.New(3), 9, 13)
	require.NoError(t, err)
	for c := 0; c < g.Width(); c++ {
		assert.Equal(t, grid.Wall, g.StateAt(grid.Coord{Row: 0, Col: c}))
		assert.Equal(t, grid.Wall, g.StateAt(grid.Coord{Row: g.Height() - 1, Col: c}))
	}
	for r := 0; r < g.Height(); r++ {
		assert.Equal(t, grid.Wall, g.StateAt(grid.Coord{Row: r, Col: 0}))
		assert.Equal(t, grid.Wall, g.StateAt(grid.Coord{Row: r, Col: g.Width() - 1}))
	}
}

// TestCarve_OpenBorder verifies opened border cells stay attached to the
// single component.
func TestCarve_OpenBorder(t *testing.T) {
	g, err := carve.Carve(rng.New(3), 9, 9, carve.WithOpenBorder())
	require.NoError(t, err)
	assert.True(t, g.Connected())

	opened := 0
	for c := 0; c < g.Width(); c++ {
		if g.StateAt(grid.Coord{Row: 0, Col: c}) == grid.Floor {
			opened++
		}
	}
	assert.Greater(t, opened, 0, "open border should floor at least one top-row cell")
}

// TestCarve_Determinism verifies bit-identical output for equal seeds and a
// differing layout for a different seed (probabilistically safe at 21x21).
func TestCarve_Determinism(t *testing.T) {
	opts := []carve.Option{carve.WithRooms(3, 3, 5), carve.WithLoopProbability(0.2)}
	a, err := carve.Carve(rng.New(42), 21, 21, opts...)
	require.NoError(t, err)
	b, err := carve.Carve(rng.New(42), 21, 21, opts...)
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "same seed must reproduce the same grid")

	c, err := carve.Carve(rng.New(43), 21, 21, opts...)
	require.NoError(t, err)
	assert.False(t, a.Equal(c), "different seed produced an identical 21x21 grid")
}

// TestCarve_LoopProbabilityOne verifies maximal loop opening keeps the maze
// connected and strictly increases open area versus the acyclic baseline.
func TestCarve_LoopProbabilityOne(t *testing.T) {
	base, err := carve.Carve(rng.New(7), 15, 15)
	require.NoError(t, err)
	looped, err := carve.Carve(rng.New(7), 15, 15, carve.WithLoopProbability(1))
	require.NoError(t, err)

	assert.True(t, looped.Connected())
	assert.Greater(t, looped.WalkableCount(), base.WalkableCount())
}

// TestCarve_RoomsStayConnected verifies room overlays always end up attached
// to the corridor network.
func TestCarve_RoomsStayConnected(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, err := carve.Carve(rng.New(seed), 19, 25, carve.WithRooms(4, 3, 7))
		require.NoErrorf(t, err, "seed=%d", seed)
		assert.Truef(t, g.Connected(), "room maze disconnected at seed=%d", seed)
	}
}

// TestCarve_CorridorWidth verifies wide corridors carve full-width passages.
func TestCarve_CorridorWidth(t *testing.T) {
	g, err := carve.Carve(rng.New(2), 11, 11, carve.WithCorridorWidth(2))
	require.NoError(t, err)
	assert.True(t, g.Connected())
	// The top-left node block spans rows/cols 1..2 and must be fully floor.
	for r := 1; r <= 2; r++ {
		for c := 1; c <= 2; c++ {
			assert.Equal(t, grid.Floor, g.StateAt(grid.Coord{Row: r, Col: c}))
		}
	}

	_, err = carve.Carve(rng.New(2), 3, 3, carve.WithCorridorWidth(2))
	assert.ErrorIs(t, err, carve.ErrTooSmall)
}
