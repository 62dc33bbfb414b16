// Package carve generates connected maze topologies on a rectangular grid.
//
// What:
//
//   - Carve produces a grid.Grid whose walkable cells form a single connected
//     component, using randomized frontier carving (a Prim/DFS hybrid) over an
//     odd-aligned lattice that keeps corridor walls exactly one cell thick.
//   - Optional rectangular rooms are overlaid before corridor carving; the
//     frontier pass then attaches them to the corridor network.
//   - Optional loop opening knocks out redundant walls with a configured
//     probability, trading the acyclic-by-default topology for cycles without
//     ever disconnecting the maze.
//
// Determinism:
//
//   - All randomness flows through the supplied rng.Source; the same seed and
//     options produce an identical grid on every platform.
//
// Errors:
//
//   - ErrTooSmall: dimensions cannot fit the lattice scheme.
//   - ErrInvalidProbability: loop probability outside [0,1].
//   - ErrBadRoomSpec: negative room count or inverted size range.
//   - ErrRoomTooLarge: the minimum requested room cannot fit the grid.
//   - ErrNeedRandSource: nil rng.Source.
//   - ErrConstructFailed: internal connectivity invariant violated (a bug).
//
// Postcondition:
//
//   - Unless WithDisconnectedOK is set, Carve flood-fills the result and
//     refuses to return a grid with an unreachable walkable cell.
package carve
