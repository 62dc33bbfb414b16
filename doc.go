// Package mazegrid is a deterministic toolkit for generating, populating,
// and serializing 2D text mazes.
//
// 🚀 What is mazegrid?
//
//	A seed-driven maze pipeline built from small, composable packages:
//		• rng      — seedable random source with substream derivation
//		• grid     — rectangular cell grid + flood-fill connectivity
//		• carve    — frontier-based corridor carving, rooms, loop opening
//		• place    — entity placement under minimum-separation constraints
//		• textgrid — byte-exact text codec ('*' walls, ' ' floors)
//		• maze     — variation drivers tying carving, placement and retries
//		• api      — optional HTTP adapter over the maze drivers
//
// ✨ Why choose mazegrid?
//
//   - Deterministic – identical seed and request replay identical mazes
//   - Connected by construction – every maze is a single walkable component
//   - Explicit errors – sentinel errors with an errors.Is contract throughout
//
// Quick ASCII example (5×5, one 'P' and one 'G' entity):
//
//	*****
//	*P  *
//	* * *
//	*  G*
//	*****
//
// Dive into the per-package docs for the full contracts, or run the mazed
// command for the HTTP surface.
//
//	go get github.com/mazegrid/mazegrid
package mazegrid
