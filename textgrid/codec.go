package textgrid

import (
	"fmt"
	"strings"

	"github.com/mazegrid/mazegrid/grid"
)

// DecodeOption customizes a single Decode invocation.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	checkConnectivity bool
}

// WithConnectivityCheck makes Decode reject grids whose walkable cells form
// more than one component (ErrDisconnected). Used when ingesting externally
// authored mazes.
func WithConnectivityCheck() DecodeOption {
	return func(c *decodeConfig) { c.checkConnectivity = true }
}

// Encode renders g one character per cell, each row terminated by '\n'.
// The output is byte-for-byte deterministic for a given grid and alphabet.
// Returns ErrUnmappedKind when an entity kind has no glyph.
//
// Complexity: O(H×W).
func Encode(g *grid.Grid, a Alphabet) (string, error) {
	var b strings.Builder
	b.Grow(g.Height() * (g.Width() + 1))

	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			cell, err := g.At(grid.Coord{Row: r, Col: c})
			if err != nil {
				return "", fmt.Errorf("textgrid: Encode: %w", err)
			}
			switch cell.State {
			case grid.Wall:
				b.WriteRune(a.wall)
			case grid.Floor:
				b.WriteRune(a.floor)
			case grid.Entity:
				glyph, ok := a.glyphFor(cell.Kind)
				if !ok {
					return "", fmt.Errorf("textgrid: Encode: kind %q at (%d,%d): %w",
						cell.Kind, r, c, ErrUnmappedKind)
				}
				b.WriteRune(glyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// Decode parses text back into a grid. Rows are '\n'-separated; a trailing
// newline is accepted. All rows must have equal length and every character
// must belong to the alphabet, otherwise ErrMalformedInput is returned.
//
// Complexity: O(len(text)).
func Decode(text string, a Alphabet, opts ...DecodeOption) (*grid.Grid, error) {
	cfg := decodeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	rows := strings.Split(text, "\n")
	// Tolerate exactly one trailing newline (the Encode contract emits it).
	if n := len(rows); n > 0 && rows[n-1] == "" {
		rows = rows[:n-1]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("textgrid: Decode: empty input: %w", ErrMalformedInput)
	}

	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, fmt.Errorf("textgrid: Decode: empty row 0: %w", ErrMalformedInput)
	}

	g, err := grid.New(len(rows), width)
	if err != nil {
		return nil, fmt.Errorf("textgrid: Decode: %w", err)
	}

	for r, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("textgrid: Decode: row %d has %d cells, want %d: %w",
				r, len(runes), width, ErrMalformedInput)
		}
		for c, ch := range runes {
			at := grid.Coord{Row: r, Col: c}
			switch {
			case ch == a.wall:
				// cells start as wall; nothing to do
			case ch == a.floor:
				_ = g.SetFloor(at)
			default:
				kind, ok := a.kindFor(ch)
				if !ok {
					return nil, fmt.Errorf("textgrid: Decode: unrecognized %q at (%d,%d): %w",
						ch, r, c, ErrMalformedInput)
				}
				_ = g.SetEntity(at, kind)
			}
		}
	}

	if cfg.checkConnectivity && !g.Connected() {
		return nil, fmt.Errorf("textgrid: Decode: %w", ErrDisconnected)
	}
	return g, nil
}
