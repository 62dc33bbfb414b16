// Package textgrid is the external contract of mazegrid: a bidirectional
// mapping between a grid.Grid and a fixed-character-per-cell text form.
//
// Format:
//
//   - One printable character per cell, one line per row, every row terminated
//     by '\n'. All rows have equal length. No header, no metadata.
//   - The default alphabet is '*' for walls and ' ' for floor, plus one
//     distinct character per registered entity kind. The full mapping must be
//     injective; collisions are rejected at alphabet construction.
//
// Round trip: Decode(Encode(g)) reproduces g's wall/floor/entity layout
// byte-for-byte. Seeds and policy metadata are not part of the text form.
//
// Errors:
//
//   - ErrNotInjective: two symbols of the alphabet map to the same character.
//   - ErrUnmappedKind: Encode met an entity kind absent from the alphabet.
//   - ErrMalformedInput: ragged rows, empty input, or an unrecognized
//     character during Decode.
//   - ErrDisconnected: Decode with WithConnectivityCheck found more than one
//     walkable component.
package textgrid
