// Package api is the host-binding surface of mazegrid: a thin HTTP adapter
// exposing maze generation and validation to external consumers.
//
// Routes (under the configured base path, default /v1):
//
//   - POST /mazes          — run a generation request, returning the text grid
//     and the placed entity coordinates.
//   - POST /mazes/validate — check an externally authored text grid.
//
// The adapter owns no state: every request builds its driver, generates, and
// returns. Error mapping: ErrInvalidArgument and malformed text are 400,
// placement exhaustion is 422, anything else is 500.
package api
