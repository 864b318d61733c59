package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quote-calculator/internal/domain"
	"github.com/jsamuelsen/quote-calculator/internal/platform/logging"
)

// MapDomainError maps a domain error to an HTTP status code and error
// response. Unknown errors are mapped to 500 Internal Server Error with
// a generic message so internals never leak to the caller.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case domain.IsMissingFields(err):
		return http.StatusBadRequest, NewErrorResponse(
			CategoryMissingFields,
			err.Error(),
		)

	case domain.IsInvalidRevenue(err):
		return http.StatusBadRequest, NewErrorResponse(
			CategoryInvalidRevenue,
			err.Error(),
		)

	case domain.IsInvalidState(err):
		return http.StatusBadRequest, NewErrorResponse(
			CategoryInvalidState,
			err.Error(),
		)

	case domain.IsInvalidBusinessType(err):
		return http.StatusBadRequest, NewErrorResponse(
			CategoryInvalidBusinessType,
			err.Error(),
		)

	default:
		return http.StatusInternalServerError, NewErrorResponse(
			CategoryInternal,
			"an internal error occurred",
		)
	}
}

// HandleError writes the mapped error response to the gin.Context.
// Internal errors are logged with the trace ID before responding.
func HandleError(c *gin.Context, err error) {
	status, errResp := MapDomainError(err)

	if status == http.StatusInternalServerError {
		logger := logging.FromContext(c.Request.Context())
		logger.Error("internal error",
			"error", err.Error(),
			"trace_id", GetTraceID(c),
		)
	}

	c.JSON(status, errResp)
}

// GetTraceID extracts the OpenTelemetry trace ID from the request
// context, or returns an empty string when no span is recording.
func GetTraceID(c *gin.Context) string {
	span := trace.SpanFromContext(c.Request.Context())
	if !span.SpanContext().HasTraceID() {
		return ""
	}

	return span.SpanContext().TraceID().String()
}
