package textgrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazegrid/mazegrid/carve"
	"github.com/mazegrid/mazegrid/grid"
	"github.com/mazegrid/mazegrid/place"
	"github.com/mazegrid/mazegrid/rng"
	"github.com/mazegrid/mazegrid/textgrid"
)

// TestNewAlphabet_Injectivity covers collision rejection.
func TestNewAlphabet_Injectivity(t *testing.T) {
	cases := []struct {
		name        string
		wall, floor rune
		entities    map[rune]rune
	}{
		{"WallEqualsFloor", '*', '*', nil},
		{"GlyphHitsWall", '*', ' ', map[rune]rune{'P': '*'}},
		{"GlyphHitsFloor", '*', ' ', map[rune]rune{'P': ' '}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := textgrid.NewAlphabet(tc.wall, tc.floor, tc.entities)
			assert.ErrorIs(t, err, textgrid.ErrNotInjective)
		})
	}

	// Two kinds onto the same glyph.
	_, err := textgrid.NewAlphabet('*', ' ', map[rune]rune{'P': 'x', 'G': 'x'})
	assert.ErrorIs(t, err, textgrid.ErrNotInjective)

	// WithKinds identity collision with an existing registration.
	a, err := textgrid.NewAlphabet('*', ' ', map[rune]rune{'P': 'G'})
	require.NoError(t, err)
	_, err = a.WithKinds('G')
	assert.ErrorIs(t, err, textgrid.ErrNotInjective)
}

// TestEncode_Layout pins the byte-level format: one char per cell, '\n' after
// every row including the last.
func TestEncode_Layout(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)
	require.NoError(t, g.SetFloor(grid.Coord{Row: 0, Col: 1}))
	require.NoError(t, g.SetEntity(grid.Coord{Row: 1, Col: 2}, 'P'))

	a, err := textgrid.DefaultAlphabet().WithKinds('P')
	require.NoError(t, err)

	text, err := textgrid.Encode(g, a)
	require.NoError(t, err)
	assert.Equal(t, "* *\n**P\n", text)
}

// TestEncode_UnmappedKind verifies the strict glyph contract.
func TestEncode_UnmappedKind(t *testing.T) {
	g, err := grid.New(1, 1)
	require.NoError(t, err)
	require.NoError(t, g.SetEntity(grid.Coord{}, 'Z'))

	_, err = textgrid.Encode(g, textgrid.DefaultAlphabet())
	assert.ErrorIs(t, err, textgrid.ErrUnmappedKind)
}

// TestDecode_Malformed covers ragged rows, empty input, and unknown glyphs.
func TestDecode_Malformed(t *testing.T) {
	a := textgrid.DefaultAlphabet()
	cases := []struct {
		name string
		text string
	}{
		{"RaggedRows", "***\n**\n"},
		{"Empty", ""},
		{"OnlyNewline", "\n"},
		{"UnknownChar", "**\n*?\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := textgrid.Decode(tc.text, a)
			assert.ErrorIs(t, err, textgrid.ErrMalformedInput)
		})
	}
}

// TestDecode_TrailingNewlineOptional verifies both terminated and
// unterminated final rows parse identically.
func TestDecode_TrailingNewlineOptional(t *testing.T) {
	a := textgrid.DefaultAlphabet()
	g1, err := textgrid.Decode("* \n *\n", a)
	require.NoError(t, err)
	g2, err := textgrid.Decode("* \n *", a)
	require.NoError(t, err)
	assert.True(t, g1.Equal(g2))
}

// TestDecode_ConnectivityCheck verifies the optional validation path.
func TestDecode_ConnectivityCheck(t *testing.T) {
	a := textgrid.DefaultAlphabet()
	split := "* *\n***\n* *\n" // two isolated floor regions

	g, err := textgrid.Decode(split, a)
	require.NoError(t, err, "plain decode accepts disconnected grids")
	assert.False(t, g.Connected())

	_, err = textgrid.Decode(split, a, textgrid.WithConnectivityCheck())
	assert.ErrorIs(t, err, textgrid.ErrDisconnected)
}

// TestRoundTrip verifies decode(encode(m)) == m for generated mazes with
// entities, across several seeds.
func TestRoundTrip(t *testing.T) {
	a, err := textgrid.DefaultAlphabet().WithKinds('P', 'G')
	require.NoError(t, err)

	for seed := int64(1); seed <= 5; seed++ {
		g, err := carve.Carve(rng.New(seed), 11, 17, carve.WithLoopProbability(0.15))
		require.NoError(t, err)
		_, err = place.Place(rng.New(seed), g, []place.Spec{
			{Kind: 'P', Count: 1},
			{Kind: 'G', Count: 2, MinSeparation: 3},
		})
		require.NoError(t, err)

		text, err := textgrid.Encode(g, a)
		require.NoError(t, err)
		back, err := textgrid.Decode(text, a)
		require.NoErrorf(t, err, "seed=%d", seed)
		assert.Truef(t, g.Equal(back), "round trip mismatch at seed=%d:\n%s", seed, text)
	}
}
