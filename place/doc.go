// Package place assigns entity markers to floor cells of a carved maze,
// subject to minimum pairwise separation constraints.
//
// What:
//
//   - Spec describes one entity class: a character tag, a required count, and
//     a minimum separation distance against every other placed entity.
//   - Place runs a randomized greedy search: it shuffles the floor-cell pool
//     and claims cells in order, rejecting any cell that violates separation
//     against an already-placed entity. A pool exhausted before the count is
//     met fails the attempt; attempts are retried with a fresh shuffle up to
//     a configured bound.
//
// Placement order (documented tunable): entity classes are placed in
// descending MinSeparation order, ties broken by descending Count, then by
// request order. The tightest constraint is attacked first so infeasible
// requests fail fast. The order is deterministic.
//
// Metrics: Manhattan (default) or Chebyshev, selected per call.
//
// Errors:
//
//   - ErrInvalidSpec: duplicate kinds, non-positive count, negative
//     separation, or no specs at all where required.
//   - ErrExhausted: no valid assignment found within the attempt bound.
//     Callers (the variation drivers) decide whether to re-carve.
package place
