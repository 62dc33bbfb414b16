package api

import (
	"fmt"
	"unicode/utf8"

	"github.com/mazegrid/mazegrid/maze"
	"github.com/mazegrid/mazegrid/place"
)

// EntitySpecDTO mirrors place.Spec with a one-character string tag, which is
// friendlier to JSON callers than a raw rune code point.
type EntitySpecDTO struct {
	Kind          string `json:"kind" binding:"required"`
	Count         int    `json:"count" binding:"required"`
	MinSeparation int    `json:"min_separation"`
}

// GenerateRequest is the wire form of maze.Request.
type GenerateRequest struct {
	Height          int             `json:"height" binding:"required"`
	Width           int             `json:"width" binding:"required"`
	Seed            int64           `json:"seed"`
	RoomCount       int             `json:"room_count"`
	RoomSizeRange   [2]int          `json:"room_size_range"`
	LoopProbability float64         `json:"loop_probability"`
	Entities        []EntitySpecDTO `json:"entities"`
	Metric          string          `json:"metric"` // "manhattan" (default) or "chebyshev"
	MaxRetries      int             `json:"max_retries"`
	MaxAttempts     int             `json:"max_attempts"`
}

// PlacementDTO is one placed entity in a response.
type PlacementDTO struct {
	Kind string `json:"kind"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

// GenerateResponse carries the text grid contract plus entity coordinates.
type GenerateResponse struct {
	TextGrid string         `json:"text_grid"`
	Seed     int64          `json:"seed"`
	Entities []PlacementDTO `json:"entities"`
}

// ValidateRequest wraps an externally authored text grid.
type ValidateRequest struct {
	TextGrid string `json:"text_grid" binding:"required"`
}

// ValidateResponse reports the ingestion verdict.
type ValidateResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// toRequest converts the wire form into a maze.Request, rejecting tags that
// are not exactly one character.
func (r GenerateRequest) toRequest() (maze.Request, error) {
	specs := make([]place.Spec, 0, len(r.Entities))
	for _, e := range r.Entities {
		kind, size := utf8.DecodeRuneInString(e.Kind)
		if kind == utf8.RuneError || size != len(e.Kind) {
			return maze.Request{}, fmt.Errorf("%w: entity kind %q must be one character", maze.ErrInvalidArgument, e.Kind)
		}
		specs = append(specs, place.Spec{Kind: kind, Count: e.Count, MinSeparation: e.MinSeparation})
	}

	metric := place.Manhattan
	switch r.Metric {
	case "", "manhattan":
	case "chebyshev":
		metric = place.Chebyshev
	default:
		return maze.Request{}, fmt.Errorf("%w: unknown metric %q", maze.ErrInvalidArgument, r.Metric)
	}

	return maze.Request{
		Height:          r.Height,
		Width:           r.Width,
		Seed:            r.Seed,
		RoomCount:       r.RoomCount,
		RoomSizeRange:   r.RoomSizeRange,
		LoopProbability: r.LoopProbability,
		Entities:        specs,
		Metric:          metric,
		MaxPlaceRetries: r.MaxRetries,
		MaxAttempts:     r.MaxAttempts,
	}, nil
}
