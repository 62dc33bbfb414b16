package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mazegrid/mazegrid/maze"
	"github.com/mazegrid/mazegrid/textgrid"
)

// Controller owns the maze routes. It holds only its logger; every request is
// served from scratch, so concurrent requests share nothing mutable.
type Controller struct {
	log *logrus.Logger
}

// NewController creates a Controller logging through log.
func NewController(log *logrus.Logger) *Controller {
	return &Controller{log: log}
}

// Register attaches the maze routes onto a route group.
func (c *Controller) Register(rg *gin.RouterGroup) {
	rg.POST("/mazes", c.generate)
	rg.POST("/mazes/validate", c.validate)
}

// generate handles POST /mazes.
func (c *Controller) generate(ctx *gin.Context) {
	var body GenerateRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}

	req, err := body.toRequest()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	driver, err := maze.NewFreshDriver(req)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	m, err := driver.Generate(req.Seed)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"request_id": RequestID(ctx),
			"seed":       req.Seed,
		}).WithError(err).Warn("generation failed")
		ctx.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	alphabet, err := req.Alphabet()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	text, err := m.Text(alphabet)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	placements := make([]PlacementDTO, 0, len(m.Entities))
	for _, p := range m.Entities {
		placements = append(placements, PlacementDTO{Kind: string(p.Kind), Row: p.At.Row, Col: p.At.Col})
	}
	ctx.JSON(http.StatusOK, GenerateResponse{TextGrid: text, Seed: m.Seed, Entities: placements})
}

// validate handles POST /mazes/validate.
func (c *Controller) validate(ctx *gin.Context) {
	var body ValidateRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}

	if err := maze.Validate(body.TextGrid, textgrid.DefaultAlphabet()); err != nil {
		ctx.JSON(http.StatusOK, ValidateResponse{Valid: false, Reason: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, ValidateResponse{Valid: true})
}

// statusFor maps the maze error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, maze.ErrInvalidArgument),
		errors.Is(err, textgrid.ErrMalformedInput),
		errors.Is(err, textgrid.ErrNotInjective),
		errors.Is(err, textgrid.ErrDisconnected):
		return http.StatusBadRequest
	case errors.Is(err, maze.ErrPlacementExhausted):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
