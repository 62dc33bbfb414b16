package textgrid

import "errors"

var (
	// ErrNotInjective indicates two alphabet symbols share a character.
	ErrNotInjective = errors.New("textgrid: alphabet mapping must be injective")
	// ErrUnmappedKind indicates Encode met an entity kind with no glyph.
	ErrUnmappedKind = errors.New("textgrid: entity kind has no alphabet glyph")
	// ErrMalformedInput indicates text that does not parse as a rectangular
	// grid over the alphabet. Never retried.
	ErrMalformedInput = errors.New("textgrid: malformed input")
	// ErrDisconnected indicates the decoded grid failed the optional
	// connectivity validation.
	ErrDisconnected = errors.New("textgrid: walkable cells are not connected")
)
