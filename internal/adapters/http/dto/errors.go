// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import "net/http"

// ErrorResponse is the standard error envelope for all error responses.
// The envelope is deliberately flat: callers pattern-match on the literal
// category text in Error, so both field names and category values are part
// of the wire contract.
type ErrorResponse struct {
	// Error is a machine-matchable category string from the fixed
	// vocabulary below.
	Error string `json:"error"`

	// Message is a human-readable elaboration.
	Message string `json:"message"`
}

// Error categories. The values are wire literals; changing them breaks
// every caller that matches on the text.
const (
	// CategoryMissingFields indicates one or more required fields were
	// absent or empty.
	CategoryMissingFields = "Missing required fields"

	// CategoryInvalidRevenue indicates revenue was non-numeric, null,
	// or negative.
	CategoryInvalidRevenue = "Invalid revenue"

	// CategoryInvalidState indicates the state code is not a supported
	// jurisdiction.
	CategoryInvalidState = "Invalid state"

	// CategoryInvalidBusinessType indicates the business code is not a
	// supported industry category.
	CategoryInvalidBusinessType = "Invalid business type"

	// CategoryMalformedPayload indicates the request body could not be
	// parsed as JSON.
	CategoryMalformedPayload = "Invalid JSON"

	// CategoryMethodNotAllowed indicates the endpoint was invoked with
	// an unsupported HTTP method.
	CategoryMethodNotAllowed = "Method not allowed"

	// CategoryNotFound indicates the requested route does not exist.
	CategoryNotFound = "Not found"

	// CategoryTimeout indicates the request exceeded the server's
	// processing deadline.
	CategoryTimeout = "Request timeout"

	// CategoryInternal indicates an unexpected server-side failure.
	CategoryInternal = "Internal error"
)

// NewErrorResponse creates a new error response with the given category
// and message.
func NewErrorResponse(category, message string) *ErrorResponse {
	return &ErrorResponse{
		Error:   category,
		Message: message,
	}
}

// HTTPStatusFromCategory maps error categories to HTTP status codes.
func HTTPStatusFromCategory(category string) int {
	switch category {
	case CategoryMissingFields,
		CategoryInvalidRevenue,
		CategoryInvalidState,
		CategoryInvalidBusinessType,
		CategoryMalformedPayload:
		return http.StatusBadRequest
	case CategoryMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case CategoryNotFound:
		return http.StatusNotFound
	case CategoryTimeout:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
