package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger logs one line per request, at Error level when a handler
// recorded errors on the context.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		}

		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.Errors())
			s.logger.Error("HTTP request with errors", attrs...)
			return
		}
		s.logger.Info("HTTP request", attrs...)
	}
}

// recover turns a handler panic into a 500 response.
func (s *Server) recover(c *gin.Context, recovered any) {
	s.logger.Error("panic recovered",
		slog.Any("panic", recovered),
		slog.String("path", c.Request.URL.Path),
	)
	c.AbortWithStatus(http.StatusInternalServerError)
}
