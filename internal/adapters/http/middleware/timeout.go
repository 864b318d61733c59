package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-calculator/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-calculator/internal/platform/logging"
)

// Timeout returns middleware that bounds request handling. Past the
// deadline the client gets 503 with the timeout envelope. The deadline
// travels on the request context; a handler that ignores cancellation
// keeps running, it just no longer owns the response.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return TimeoutWithSkipPaths(timeout, nil)
}

// TimeoutWithSkipPaths is Timeout with exact paths exempted, for
// endpoints that legitimately outlive the standard deadline.
func TimeoutWithSkipPaths(timeout time.Duration, skipPaths []string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, path := range skipPaths {
		skip[path] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, excluded := skip[c.Request.URL.Path]; excluded {
			c.Next()
			return
		}

		runWithDeadline(c, timeout)
	}
}

// runWithDeadline executes the rest of the chain under a deadline and
// claims the response for the timeout envelope when the deadline wins.
func runWithDeadline(c *gin.Context, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	c.Request = c.Request.WithContext(ctx)

	done := make(chan struct{})
	go func() {
		c.Next()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			respondTimeout(c, timeout)
		}
	}
}

// respondTimeout logs the expiry and writes the 503 envelope if nothing
// has been written yet.
func respondTimeout(c *gin.Context, timeout time.Duration) {
	logging.FromContext(c.Request.Context()).Warn("request timeout",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Duration("timeout", timeout),
		slog.String("trace_id", activeTraceID(c)),
	)

	errResp := dto.NewErrorResponse(dto.CategoryTimeout, "request timeout exceeded")

	if c.Writer.Written() {
		c.Abort()
		return
	}

	c.AbortWithStatusJSON(http.StatusServiceUnavailable, errResp)
}

// SimpleTimeout only installs the deadline on the request context and
// leaves the response to the handlers. Unlike Timeout it never races a
// goroutine against gin's writer, so it is the variant wired into the
// quote router.
func SimpleTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
