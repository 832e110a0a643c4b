// Package error defines domain-specific errors for the OrderDash application.
package error

import "errors"

// Order domain errors.
var (
	// ErrOrderNotFound is returned when an order id does not exist for an
	// operation that requires existence (update). Delete is tolerant and
	// never returns it.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidOrderTotal is returned when an order total amount is negative.
	ErrInvalidOrderTotal = errors.New("invalid order total amount")

	// ErrInvalidLineItem is returned when a line item has a negative quantity
	// or unit price.
	ErrInvalidLineItem = errors.New("invalid line item")
)

// OrderErrorCode defines error codes for order errors.
// Format: ORD-XXYYYY where XX is category and YYYY is specific error.
type OrderErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeOrderNotFound     OrderErrorCode = "ORD-010001"
	ErrCodeInvalidOrderTotal OrderErrorCode = "ORD-010002"
	ErrCodeInvalidLineItem   OrderErrorCode = "ORD-010003"

	// Internal errors (99XXXX)
	ErrCodeOrderInternalError OrderErrorCode = "ORD-990001"
)

// OrderError represents an order error with code and message.
type OrderError struct {
	Code    OrderErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *OrderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *OrderError) Unwrap() error {
	return e.Err
}

// NewOrderError creates a new OrderError with the given code and message.
func NewOrderError(code OrderErrorCode, message string, err error) *OrderError {
	return &OrderError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
