package textgrid

import "fmt"

// Default cell characters; entity kinds render as themselves unless remapped.
const (
	DefaultWallChar  = '*'
	DefaultFloorChar = ' '
)

// Alphabet is an injective mapping {wall, floor, entity kinds} → characters.
// Construct with NewAlphabet or DefaultAlphabet; the zero value is not valid.
type Alphabet struct {
	wall, floor rune
	glyphs      map[rune]rune // entity kind → glyph
	kinds       map[rune]rune // glyph → entity kind (reverse)
}

// DefaultAlphabet returns the '*'/' ' alphabet with no registered entities.
// Register kinds with WithKinds before encoding entity-bearing grids.
func DefaultAlphabet() Alphabet {
	a, _ := NewAlphabet(DefaultWallChar, DefaultFloorChar, nil)
	return a
}

// NewAlphabet builds an alphabet from wall/floor characters and an entity
// kind→glyph map. Returns ErrNotInjective when any two symbols collide.
//
// Complexity: O(len(entities)).
func NewAlphabet(wall, floor rune, entities map[rune]rune) (Alphabet, error) {
	a := Alphabet{
		wall:   wall,
		floor:  floor,
		glyphs: make(map[rune]rune, len(entities)),
		kinds:  make(map[rune]rune, len(entities)),
	}
	if wall == floor {
		return Alphabet{}, fmt.Errorf("textgrid: wall %q == floor %q: %w", wall, floor, ErrNotInjective)
	}
	for kind, glyph := range entities {
		if err := a.register(kind, glyph); err != nil {
			return Alphabet{}, err
		}
	}
	return a, nil
}

// WithKinds returns a copy of a with the given kinds registered under
// identity glyphs (each kind renders as its own character). This is the
// mapping the variation drivers use. Returns ErrNotInjective on collision.
func (a Alphabet) WithKinds(kinds ...rune) (Alphabet, error) {
	out := Alphabet{
		wall:   a.wall,
		floor:  a.floor,
		glyphs: make(map[rune]rune, len(a.glyphs)+len(kinds)),
		kinds:  make(map[rune]rune, len(a.kinds)+len(kinds)),
	}
	for k, g := range a.glyphs {
		out.glyphs[k] = g
		out.kinds[g] = k
	}
	for _, k := range kinds {
		if err := out.register(k, k); err != nil {
			return Alphabet{}, err
		}
	}
	return out, nil
}

func (a *Alphabet) register(kind, glyph rune) error {
	if glyph == a.wall || glyph == a.floor {
		return fmt.Errorf("textgrid: glyph %q collides with wall/floor: %w", glyph, ErrNotInjective)
	}
	if _, taken := a.kinds[glyph]; taken {
		return fmt.Errorf("textgrid: glyph %q mapped twice: %w", glyph, ErrNotInjective)
	}
	if _, dup := a.glyphs[kind]; dup {
		return fmt.Errorf("textgrid: kind %q mapped twice: %w", kind, ErrNotInjective)
	}
	a.glyphs[kind] = glyph
	a.kinds[glyph] = kind
	return nil
}

// Wall reports the wall character.
func (a Alphabet) Wall() rune { return a.wall }

// Floor reports the floor character.
func (a Alphabet) Floor() rune { return a.floor }

// glyphFor resolves an entity kind to its character.
func (a Alphabet) glyphFor(kind rune) (rune, bool) {
	g, ok := a.glyphs[kind]
	return g, ok
}

// kindFor resolves a character back to its entity kind.
func (a Alphabet) kindFor(glyph rune) (rune, bool) {
	k, ok := a.kinds[glyph]
	return k, ok
}
