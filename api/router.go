package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Router wires the middleware and controllers onto a gin engine.
type Router struct {
	addr    string
	baseURL string
	log     *logrus.Logger
}

// Config holds the settings for creating a Router.
type Config struct {
	Addr    string // address to listen on, e.g. ":8080"
	BaseURL string // base path for the API, e.g. "/v1"
	Log     *logrus.Logger
}

// NewRouter creates a Router from config. A nil logger falls back to the
// logrus standard logger.
func NewRouter(cfg Config) *Router {
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	base := cfg.BaseURL
	if base == "" {
		base = "/v1"
	}
	return &Router{addr: cfg.Addr, baseURL: base, log: log}
}

// Engine builds the gin engine with middleware and routes installed.
// Split from Run so tests can drive it with httptest.
func (r *Router) Engine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), RequestIDMiddleware(), LoggingMiddleware(r.log))

	group := engine.Group(r.baseURL)
	NewController(r.log).Register(group)
	return engine
}

// Run starts the HTTP server. It blocks until the server stops.
func (r *Router) Run() error {
	return r.Engine().Run(r.addr)
}
