// Package gateway provides the request middleware chain: session
// authentication, self-only authorization, request IDs, and structured
// request logging.
package gateway

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gomun/internal/apperr"
	"gomun/internal/session"
)

const (
	// ContextEmailKey is the gin context key holding the authenticated
	// account's email.
	ContextEmailKey = "email"
	// ContextRequestIDKey is the gin context key holding the request ID.
	ContextRequestIDKey = "request_id"
)

// SessionAuth resolves the bearer credential and injects the caller's
// identity into the request context. Any resolve failure ends the request
// with 401.
func SessionAuth(sessions session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, err := sessions.Resolve(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			slog.Warn("Session resolution failed",
				"error", err.Error(),
				"request_id", c.GetString(ContextRequestIDKey),
			)
			apperr.Abort(c, err)
			return
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}

// CallerEmail returns the identity injected by SessionAuth.
func CallerEmail(c *gin.Context) string {
	return c.GetString(ContextEmailKey)
}

// RequireSelf restricts a route keyed by an email path parameter to the
// caller owning that email. The check runs before target existence is ever
// considered, so a mismatch is always 403.
func RequireSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CallerEmail(c) != c.Param(param) {
			apperr.Abort(c, apperr.Forbidden("you can only access your own resources"))
			return
		}
		c.Next()
	}
}

// RequestID generates a unique request ID for log correlation
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set(ContextRequestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// Logging logs every request with structured attributes
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		rw := newResponseWriter(c.Writer)
		c.Writer = rw

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		attrs := []any{
			"request_id", c.GetString(ContextRequestIDKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", float64(latency.Milliseconds()),
			"client_ip", c.ClientIP(),
			"response_size", rw.Size(),
		}

		if query := c.Request.URL.RawQuery; query != "" {
			attrs = append(attrs, "query", query)
		}
		if email, exists := c.Get(ContextEmailKey); exists {
			attrs = append(attrs, "email", email)
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.String())
		}

		switch {
		case status >= 500:
			slog.Error("Request failed - server error", attrs...)
		case status >= 400:
			slog.Warn("Request failed - client error", attrs...)
		default:
			slog.Info("Request completed", attrs...)
		}
	}
}
