// Package rng provides the deterministic random source threaded through every
// stochastic component of mazegrid.
//
// What:
//
//   - Source wraps a seeded math/rand.Rand behind a small, explicit API:
//     bounded integers, unit-interval floats, Fisher–Yates shuffles and
//     permutations.
//   - Derive spawns independent substreams from a parent seed using a
//     SplitMix64-style mix, so retry loops can reseed by counter instead of
//     consuming fresh entropy.
//
// Why:
//
//   - Determinism: the same seed and the same call sequence produce identical
//     output on every platform. No component reads time or process entropy.
//   - Encapsulation: no global random state; each generation call owns its
//     Source instance, which also makes parallel generation calls safe.
//
// Errors:
//
//   - ErrInvalidRange: IntN called with lo >= hi.
//
// Concurrency:
//
//   - A Source is NOT goroutine-safe. Give each goroutine its own Source,
//     typically via Derive.
package rng
