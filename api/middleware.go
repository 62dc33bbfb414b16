package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// requestIDKey is the gin context key carrying the per-request identifier.
const requestIDKey = "request_id"

// RequestIDHeader is echoed on every response so callers can correlate logs.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware assigns each request a UUID (or adopts the caller's)
// and echoes it in the response header.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(requestIDKey, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

// RequestID reports the identifier assigned by RequestIDMiddleware, or ""
// when the middleware is not installed.
func RequestID(ctx *gin.Context) string {
	return ctx.GetString(requestIDKey)
}

// LoggingMiddleware emits one structured line per request.
func LoggingMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		log.WithFields(logrus.Fields{
			"request_id": RequestID(ctx),
			"method":     ctx.Request.Method,
			"path":       ctx.Request.URL.Path,
			"status":     ctx.Writer.Status(),
			"elapsed":    time.Since(start).String(),
		}).Info("request handled")
	}
}
