package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-calculator/internal/adapters/http/dto"
)

// NotFoundHandler responds to unmatched routes with the standard error
// envelope instead of gin's plain-text default.
func NotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(
		dto.CategoryNotFound,
		"no route for "+c.Request.URL.Path,
	))
}

// MethodNotAllowedHandler responds when a route exists but not for the
// requested method. The quote endpoint is POST-only, so this is what
// any other verb against the service root receives.
func MethodNotAllowedHandler(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse(
		dto.CategoryMethodNotAllowed,
		"method "+c.Request.Method+" is not allowed on "+c.Request.URL.Path,
	))
}
