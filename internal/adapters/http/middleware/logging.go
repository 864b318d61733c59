package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// healthPathPrefix marks the operational endpoints excluded from request
// logging. Probes hit them every few seconds and would drown the quote
// traffic in noise.
const healthPathPrefix = "/-/"

// Logging returns middleware that writes a start and completion record
// for every request outside the health plane. Completion severity tracks
// the response: 5xx logs at error, 4xx at warn, the rest at info.
func Logging(logger *slog.Logger) gin.HandlerFunc {
	return LoggingWithSkipPaths(logger, nil)
}

// LoggingWithSkipPaths is Logging with additional exact paths excluded,
// for endpoints like a scrape target that are polled rather than called.
func LoggingWithSkipPaths(logger *slog.Logger, skipPaths []string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, path := range skipPaths {
		skip[path] = struct{}{}
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if _, excluded := skip[path]; excluded || strings.HasPrefix(path, healthPathPrefix) {
			c.Next()
			return
		}

		start := time.Now()
		display := displayPath(c)
		log := requestLogger(c, logger)

		log.Info("request started",
			slog.String("method", c.Request.Method),
			slog.String("path", display),
			slog.String("client_ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
		)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		log.Log(c.Request.Context(), statusLevel(status), "request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", display),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.Int64("latency_ms", latency.Milliseconds()),
			slog.Int("bytes", c.Writer.Size()),
		)
	}
}

// requestLogger binds the identity fields minted earlier in the chain
// to the request records. Outside the full chain the fields are simply
// absent.
func requestLogger(c *gin.Context, logger *slog.Logger) *slog.Logger {
	if id := GetRequestID(c); id != "" {
		logger = logger.With(slog.String("request_id", id))
	}

	if id := GetCorrelationID(c); id != "" {
		logger = logger.With(slog.String("correlation_id", id))
	}

	return logger
}

// displayPath renders the path with its query string for log records.
func displayPath(c *gin.Context) string {
	if c.Request.URL.RawQuery == "" {
		return c.Request.URL.Path
	}

	return c.Request.URL.Path + "?" + c.Request.URL.RawQuery
}

// statusLevel maps a response status code to the completion log level.
func statusLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
