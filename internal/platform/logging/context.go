package logging

import (
	"context"
	"log/slog"
)

// loggerKey is the context key for request-scoped loggers.
type loggerKey struct{}

// WithContext returns a context carrying the given logger. Handlers and
// services deeper in the call chain retrieve it with FromContext so that
// request-scoped attributes travel with the request.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or the process default
// when none is present. Safe to call with a nil context.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}

	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}

	return logger
}

// FromContextOr returns the logger stored in ctx, or fallback when the
// context carries none. Services with an injected logger use this so a
// request-scoped logger wins when one exists.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx == nil {
		return fallback
	}

	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		return fallback
	}

	return logger
}

// WithRequestID returns a context whose logger carries the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withAttr(ctx, slog.String("request_id", requestID))
}

// WithCorrelationID returns a context whose logger carries the correlation ID.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return withAttr(ctx, slog.String("correlation_id", correlationID))
}

// WithTraceID returns a context whose logger carries the trace ID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return withAttr(ctx, slog.String("trace_id", traceID))
}

func withAttr(ctx context.Context, attr slog.Attr) context.Context {
	return WithContext(ctx, FromContext(ctx).With(attr))
}

// SetDefault installs logger as the process-wide default. FromContext
// falls back to it for contexts that carry no logger of their own.
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}
