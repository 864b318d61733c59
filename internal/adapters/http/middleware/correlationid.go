package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-calculator/internal/platform/logging"
)

const (
	// HeaderCorrelationID is the header name for correlation ID. Where a
	// request ID names one HTTP exchange, a correlation ID follows a
	// business transaction across service hops.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyCorrelationID is the gin context key for the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

// CorrelationID returns middleware that propagates a correlation ID. An
// inbound X-Correlation-ID from an upstream caller is echoed; when this
// service is the transaction origin a fresh UUID is minted.
func CorrelationID() gin.HandlerFunc {
	return identity{
		header:        HeaderCorrelationID,
		ginKey:        ContextKeyCorrelationID,
		enrichLogger:  logging.WithCorrelationID,
		enrichContext: ContextWithCorrelationID,
	}.middleware()
}

// GetCorrelationID returns the correlation ID from the gin context, or
// "" when the middleware has not run.
func GetCorrelationID(c *gin.Context) string {
	return ginString(c, ContextKeyCorrelationID)
}

// MustGetCorrelationID is GetCorrelationID with "unknown" standing in
// for a missing ID.
func MustGetCorrelationID(c *gin.Context) string {
	if id := GetCorrelationID(c); id != "" {
		return id
	}

	return "unknown"
}
