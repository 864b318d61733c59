package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quote-calculator/internal/adapters/http/dto"
)

// Recovery returns middleware that converts panics into 500 responses.
// It must sit first in the chain so panics from every later middleware
// and handler are caught. The panic value, stack, and active trace ID
// are logged; the client sees only the generic internal error envelope.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return RecoveryWithWriter(logger, nil)
}

// RecoveryWithWriter is Recovery with a hook that receives the panic
// value and stack, for callers that mirror stacks to a separate sink.
func RecoveryWithWriter(logger *slog.Logger, stackHandler func(err any, stack []byte)) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				handlePanic(c, r, logger, stackHandler)
			}
		}()

		c.Next()
	}
}

func handlePanic(c *gin.Context, panicValue any, logger *slog.Logger, stackHandler func(err any, stack []byte)) {
	stack := debug.Stack()

	if stackHandler != nil {
		stackHandler(panicValue, stack)
	}

	requestLogger(c, logger).Error("panic recovered",
		slog.Any("error", panicValue),
		slog.String("stack", string(stack)),
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("trace_id", activeTraceID(c)),
	)

	errResp := dto.NewErrorResponse(dto.CategoryInternal, "an internal error occurred")

	// A handler may have started writing before it panicked.
	if c.Writer.Written() {
		c.Abort()
		return
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, errResp)
}

// activeTraceID returns the current span's trace ID, or "" outside a trace.
func activeTraceID(c *gin.Context) string {
	span := trace.SpanFromContext(c.Request.Context())
	if !span.SpanContext().HasTraceID() {
		return ""
	}

	return span.SpanContext().TraceID().String()
}
