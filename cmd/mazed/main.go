// Command mazed serves the maze generation API over HTTP.
//
// Configuration is environment-driven (a .env file is loaded when present):
//
//	MAZED_ADDR  listen address (default ":8080")
//	MAZED_BASE  base path for the API (default "/v1")
//	GIN_MODE    gin run mode ("debug", "release", "test")
//	LOG_LEVEL   logrus level name (default "info")
//	LOG_FORMAT  "json" for JSON output, anything else for text
package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/mazegrid/mazegrid/api"
)

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	log := newLogger()

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	router := api.NewRouter(api.Config{
		Addr:    envOr("MAZED_ADDR", ":8080"),
		BaseURL: envOr("MAZED_BASE", "/v1"),
		Log:     log,
	})

	log.WithField("addr", envOr("MAZED_ADDR", ":8080")).Info("mazed starting")
	if err := router.Run(); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

// newLogger builds the process logger from LOG_LEVEL / LOG_FORMAT.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if os.Getenv("LOG_FORMAT") == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
