// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
//
// Each sentinel corresponds to one rejection category of the quote request
// validation sequence. The sequence short-circuits: the first violated rule
// determines the single reported error, so these never aggregate.
var (
	// ErrMissingFields indicates one or more required request fields are absent or empty.
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidRevenue indicates revenue is not a non-negative number.
	ErrInvalidRevenue = errors.New("invalid revenue")

	// ErrInvalidState indicates the state code is not a supported jurisdiction.
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidBusinessType indicates the business code is not a supported industry.
	ErrInvalidBusinessType = errors.New("invalid business type")
)

// MissingFieldsError reports which required fields were absent or empty.
type MissingFieldsError struct {
	Fields []string
}

// Error implements the error interface.
func (e *MissingFieldsError) Error() string {
	if len(e.Fields) > 0 {
		return "missing required fields: " + strings.Join(e.Fields, ", ")
	}

	return "missing required fields"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *MissingFieldsError) Unwrap() error {
	return ErrMissingFields
}

// NewMissingFieldsError creates a missing-fields error naming the offending fields.
func NewMissingFieldsError(fields ...string) error {
	return &MissingFieldsError{Fields: fields}
}

// InvalidRevenueError provides context for revenue rejections.
type InvalidRevenueError struct {
	Reason string
	Value  any
}

// Error implements the error interface.
func (e *InvalidRevenueError) Error() string {
	if e.Reason != "" {
		return "invalid revenue: " + e.Reason
	}

	return "invalid revenue"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *InvalidRevenueError) Unwrap() error {
	return ErrInvalidRevenue
}

// NewInvalidRevenueError creates a revenue error with the rejection reason.
func NewInvalidRevenueError(reason string) error {
	return &InvalidRevenueError{Reason: reason}
}

// NewInvalidRevenueErrorWithValue creates a revenue error including the rejected value.
func NewInvalidRevenueErrorWithValue(reason string, value any) error {
	return &InvalidRevenueError{Reason: reason, Value: value}
}

// InvalidStateError provides context for state-code rejections.
type InvalidStateError struct {
	State string
}

// Error implements the error interface.
func (e *InvalidStateError) Error() string {
	if e.State != "" {
		return fmt.Sprintf("invalid state %q", e.State)
	}

	return "invalid state"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// NewInvalidStateError creates a state error recording the rejected code.
func NewInvalidStateError(state string) error {
	return &InvalidStateError{State: state}
}

// InvalidBusinessTypeError provides context for business-type rejections.
type InvalidBusinessTypeError struct {
	BusinessType string
}

// Error implements the error interface.
func (e *InvalidBusinessTypeError) Error() string {
	if e.BusinessType != "" {
		return fmt.Sprintf("invalid business type %q", e.BusinessType)
	}

	return "invalid business type"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *InvalidBusinessTypeError) Unwrap() error {
	return ErrInvalidBusinessType
}

// NewInvalidBusinessTypeError creates a business-type error recording the rejected code.
func NewInvalidBusinessTypeError(businessType string) error {
	return &InvalidBusinessTypeError{BusinessType: businessType}
}

// IsMissingFields checks if an error is a missing-fields error.
func IsMissingFields(err error) bool {
	return errors.Is(err, ErrMissingFields)
}

// IsInvalidRevenue checks if an error is an invalid-revenue error.
func IsInvalidRevenue(err error) bool {
	return errors.Is(err, ErrInvalidRevenue)
}

// IsInvalidState checks if an error is an invalid-state error.
func IsInvalidState(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

// IsInvalidBusinessType checks if an error is an invalid-business-type error.
func IsInvalidBusinessType(err error) bool {
	return errors.Is(err, ErrInvalidBusinessType)
}
