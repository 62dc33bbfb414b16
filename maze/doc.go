// Package maze composes the carver, the placement solver, and the text codec
// into named generation policies — the public entry surface of mazegrid.
//
// Drivers:
//
//   - FreshDriver ("generate fresh"): runs the full carve-then-place pipeline
//     per call. When placement exhausts its retries on one topology, the
//     driver derives the next topology seed by counter and re-carves, up to
//     Request.MaxAttempts grids, then fails with ErrPlacementExhausted.
//   - SkeletonDriver ("fixed skeleton, randomized entities"): decodes a
//     caller-supplied text grid once, then re-places entities per call on a
//     clone. Walls never change.
//   - FixedDriver ("fixed text maze"): decodes a fully authored maze,
//     validates connectivity, and returns a clone per call.
//
// Every driver exposes Generate(seed) → (*Maze, error) and holds no mutable
// state across calls, so one driver may serve concurrent callers as long as
// each call runs to completion with its own seed.
//
// Determinism: for a fixed seed, the sequence of internal seed derivations for
// retries is itself deterministic (counter-based reseed via rng.DeriveSeed),
// so generate(seed) called twice yields bit-identical text grids.
package maze
