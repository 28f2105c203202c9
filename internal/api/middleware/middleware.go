// Package middleware provides HTTP middleware for the fqdnd REST API:
// API key authentication and slog request logging.
package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/fqdn/internal/api/models"
)

// RequireAPIKey enforces a simple shared-secret API key. Clients must
// send `X-API-Key: <key>`. Keys are compared in constant time.
func RequireAPIKey(expected string) gin.HandlerFunc {
	want := []byte(expected)
	return func(c *gin.Context) {
		if expected == "" {
			c.Next()
			return
		}
		got := []byte(c.GetHeader("X-API-Key"))
		if subtle.ConstantTimeCompare(got, want) == 1 {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
	}
}

// SlogRequestLogger logs one line per request with method, path, status and
// latency.
func SlogRequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		if logger != nil {
			logger.Info("api request",
				"method", method,
				"path", path,
				"status", c.Writer.Status(),
				"latency_ms", time.Since(start).Milliseconds(),
				"client_ip", c.ClientIP(),
			)
		}
	}
}
