package dto

import (
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
)

// ErrBinding indicates the request body could not be bound.
var ErrBinding = errors.New("binding failed")

// BindQuoteRequest decodes the JSON request body into a QuoteRequest.
//
// Only decode failures are reported here (wrapped as ErrBinding); the
// field-level checks happen downstream in a fixed order, so nothing is
// validated at bind time. An empty body decodes as an empty object,
// which downstream rejects as missing fields rather than bad JSON.
func BindQuoteRequest(c *gin.Context) (*QuoteRequest, error) {
	var req QuoteRequest

	err := c.ShouldBindJSON(&req)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &QuoteRequest{}, nil
		}

		return nil, fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return &req, nil
}

// IsBindingError checks if the error originated from request binding.
func IsBindingError(err error) bool {
	return errors.Is(err, ErrBinding)
}
