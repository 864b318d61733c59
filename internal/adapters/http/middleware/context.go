package middleware

import "context"

// Unexported key types keep these context values collision-proof.
type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// ContextWithRequestID stores a request ID on a plain context.Context.
// The request ID middleware calls this so code below the HTTP adapter
// can read the ID without importing gin.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// ContextWithCorrelationID stores a correlation ID on a plain context.Context.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// RequestIDFromContext returns the request ID stored in ctx, or "" when
// absent. Safe to call with a nil context.
func RequestIDFromContext(ctx context.Context) string {
	return stringValue(ctx, requestIDKey{})
}

// CorrelationIDFromContext returns the correlation ID stored in ctx, or
// "" when absent. Safe to call with a nil context.
func CorrelationIDFromContext(ctx context.Context) string {
	return stringValue(ctx, correlationIDKey{})
}

func stringValue(ctx context.Context, key any) string {
	if ctx == nil {
		return ""
	}

	s, _ := ctx.Value(key).(string)

	return s
}
