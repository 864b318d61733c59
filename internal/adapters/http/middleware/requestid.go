// Package middleware provides HTTP middleware components for the Gin server.
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-calculator/internal/platform/logging"
)

const (
	// HeaderRequestID is the header name for request ID.
	HeaderRequestID = "X-Request-ID"

	// ContextKeyRequestID is the gin context key for the request ID.
	ContextKeyRequestID = "request_id"
)

// RequestID returns middleware that propagates a per-request ID. An
// inbound X-Request-ID is echoed; otherwise a fresh UUID is minted. The
// ID lands in the gin context, the response header, the context logger,
// and the plain request context.
func RequestID() gin.HandlerFunc {
	return identity{
		header:        HeaderRequestID,
		ginKey:        ContextKeyRequestID,
		enrichLogger:  logging.WithRequestID,
		enrichContext: ContextWithRequestID,
	}.middleware()
}

// GetRequestID returns the request ID from the gin context, or "" when
// the middleware has not run.
func GetRequestID(c *gin.Context) string {
	return ginString(c, ContextKeyRequestID)
}

// MustGetRequestID is GetRequestID with "unknown" standing in for a
// missing ID, for log sites that always want a value.
func MustGetRequestID(c *gin.Context) string {
	if id := GetRequestID(c); id != "" {
		return id
	}

	return "unknown"
}
