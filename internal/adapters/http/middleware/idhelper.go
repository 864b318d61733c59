package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// identity describes one propagated ID header. RequestID and
// CorrelationID differ only in header name, gin key, and how the ID is
// attached to the request context.
type identity struct {
	header        string
	ginKey        string
	enrichLogger  func(ctx context.Context, id string) context.Context
	enrichContext func(ctx context.Context, id string) context.Context
}

// middleware echoes an inbound ID or mints a UUID, then makes the value
// available everywhere downstream code looks for it: the gin context,
// the response header, the context logger, and the plain request context.
func (id identity) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		value := c.GetHeader(id.header)
		if value == "" {
			value = uuid.NewString()
		}

		c.Set(id.ginKey, value)
		c.Header(id.header, value)

		ctx := c.Request.Context()
		if id.enrichLogger != nil {
			ctx = id.enrichLogger(ctx, value)
		}
		if id.enrichContext != nil {
			ctx = id.enrichContext(ctx, value)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// ginString reads a string value from the gin context by key.
func ginString(c *gin.Context, key string) string {
	value, exists := c.Get(key)
	if !exists {
		return ""
	}

	s, _ := value.(string)

	return s
}
