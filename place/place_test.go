package place_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazegrid/mazegrid/carve"
	"github.com/mazegrid/mazegrid/grid"
	"github.com/mazegrid/mazegrid/place"
	"github.com/mazegrid/mazegrid/rng"
)

// openGrid returns an h×w grid whose interior is entirely floor.
func openGrid(t *testing.T, h, w int) *grid.Grid {
	t.Helper()
	g, err := grid.New(h, w)
	require.NoError(t, err)
	for r := 1; r < h-1; r++ {
		for c := 1; c < w-1; c++ {
			require.NoError(t, g.SetFloor(grid.Coord{Row: r, Col: c}))
		}
	}
	return g
}

// TestPlace_Validation covers the ErrInvalidSpec cases.
func TestPlace_Validation(t *testing.T) {
	g := openGrid(t, 7, 7)
	cases := []struct {
		name  string
		specs []place.Spec
	}{
		{"ZeroCount", []place.Spec{{Kind: 'P', Count: 0}}},
		{"NegativeCount", []place.Spec{{Kind: 'P', Count: -2}}},
		{"NegativeSeparation", []place.Spec{{Kind: 'P', Count: 1, MinSeparation: -1}}},
		{"DuplicateKind", []place.Spec{{Kind: 'P', Count: 1}, {Kind: 'P', Count: 2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := place.Place(rng.New(1), g.Clone(), tc.specs)
			assert.ErrorIs(t, err, place.ErrInvalidSpec)
		})
	}

	_, err := place.Place(nil, g, []place.Spec{{Kind: 'P', Count: 1}})
	assert.ErrorIs(t, err, place.ErrNeedRandSource)
}

// TestPlace_NoSpecs verifies an empty request succeeds without touching the grid.
func TestPlace_NoSpecs(t *testing.T) {
	g := openGrid(t, 5, 5)
	before := g.Clone()
	got, err := place.Place(rng.New(1), g, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.True(t, g.Equal(before))
}

// TestPlace_CountsAndSeparation verifies exact counts and the pairwise
// separation property across kinds and metrics.
func TestPlace_CountsAndSeparation(t *testing.T) {
	specs := []place.Spec{
		{Kind: 'P', Count: 2, MinSeparation: 2},
		{Kind: 'G', Count: 3, MinSeparation: 3},
	}
	for _, metric := range []place.Metric{place.Manhattan, place.Chebyshev} {
		t.Run(metric.String(), func(t *testing.T) {
			g := openGrid(t, 15, 15)
			got, err := place.Place(rng.New(42), g, specs, place.WithMetric(metric))
			require.NoError(t, err)

			counts := map[rune]int{}
			for _, p := range got {
				counts[p.Kind]++
				cell, err := g.At(p.At)
				require.NoError(t, err)
				assert.Equal(t, grid.Entity, cell.State)
				assert.Equal(t, p.Kind, cell.Kind)
			}
			assert.Equal(t, 2, counts['P'])
			assert.Equal(t, 3, counts['G'])

			sep := func(kind rune) int {
				for _, s := range specs {
					if s.Kind == kind {
						return s.MinSeparation
					}
				}
				return 0
			}
			for i := 0; i < len(got); i++ {
				for j := i + 1; j < len(got); j++ {
					req := sep(got[i].Kind)
					if s := sep(got[j].Kind); s > req {
						req = s
					}
					d := metric.Distance(got[i].At, got[j].At)
					assert.GreaterOrEqualf(t, d, req,
						"%c@%v vs %c@%v under %s", got[i].Kind, got[i].At, got[j].Kind, got[j].At, metric)
				}
			}
		})
	}
}

// TestPlace_Exhausted verifies a geometrically impossible request fails with
// ErrExhausted after bounded attempts and leaves the grid unchanged.
func TestPlace_Exhausted(t *testing.T) {
	g := openGrid(t, 5, 5)
	before := g.Clone()
	specs := []place.Spec{{Kind: 'X', Count: 5, MinSeparation: 10}}

	_, err := place.Place(rng.New(9), g, specs, place.WithAttempts(8))
	assert.ErrorIs(t, err, place.ErrExhausted)
	assert.True(t, g.Equal(before), "failed placement must not mutate the grid")
}

// TestPlace_NoFloor verifies placement on an all-wall grid exhausts rather
// than looping.
func TestPlace_NoFloor(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)
	_, err = place.Place(rng.New(1), g, []place.Spec{{Kind: 'P', Count: 1}})
	assert.ErrorIs(t, err, place.ErrExhausted)
}

// TestPlace_Determinism verifies identical seeds reproduce identical
// placements on identical carved grids.
func TestPlace_Determinism(t *testing.T) {
	specs := []place.Spec{
		{Kind: 'P', Count: 1},
		{Kind: 'G', Count: 2, MinSeparation: 4},
	}
	run := func() []place.Placement {
		g, err := carve.Carve(rng.New(11), 13, 13)
		require.NoError(t, err)
		got, err := place.Place(rng.New(77), g, specs)
		require.NoError(t, err)
		return got
	}
	assert.Equal(t, run(), run())
}

// TestPlace_TightestFirst verifies the documented plan order: the widest
// separation is attacked first regardless of request order.
func TestPlace_TightestFirst(t *testing.T) {
	g := openGrid(t, 9, 9)
	specs := []place.Spec{
		{Kind: 'a', Count: 1, MinSeparation: 0},
		{Kind: 'b', Count: 1, MinSeparation: 6},
	}
	got, err := place.Place(rng.New(3), g, specs)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 'b', got[0].Kind, "larger separation should be placed first")
}
