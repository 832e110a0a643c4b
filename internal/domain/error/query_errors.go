// Package error defines domain-specific errors for the OrderDash application.
package error

import "errors"

// Query criteria errors. Malformed but well-typed input (missing optional
// fields, empty sets) never produces these; only truly invalid requests do.
var (
	// ErrInvalidDateRange is returned when a date-range filter has a start
	// date after its end date.
	ErrInvalidDateRange = errors.New("start_date must not be after end_date")

	// ErrIncompleteDateRange is returned when only one of start_date and
	// end_date is provided.
	ErrIncompleteDateRange = errors.New("start_date and end_date are both required")

	// ErrUnknownSortColumn is returned when a sort request names a column
	// the engine does not know.
	ErrUnknownSortColumn = errors.New("unknown sort column")

	// ErrInvalidSortDirection is returned when the sort direction is neither
	// asc, desc nor empty.
	ErrInvalidSortDirection = errors.New("sort direction must be asc or desc")

	// ErrInvalidDateFormat is returned when a date parameter is malformed.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
)

// QueryErrorCode defines error codes for query criteria errors.
// Format: QRY-XXYYYY where XX is category and YYYY is specific error.
type QueryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDateRange     QueryErrorCode = "QRY-010001"
	ErrCodeIncompleteDateRange  QueryErrorCode = "QRY-010002"
	ErrCodeUnknownSortColumn    QueryErrorCode = "QRY-010003"
	ErrCodeInvalidSortDirection QueryErrorCode = "QRY-010004"
	ErrCodeInvalidDateFormat    QueryErrorCode = "QRY-010005"
)

// QueryError represents a query criteria error with code and message.
type QueryError struct {
	Code    QueryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *QueryError) Unwrap() error {
	return e.Err
}

// NewQueryError creates a new QueryError with the given code and message.
func NewQueryError(code QueryErrorCode, message string, err error) *QueryError {
	return &QueryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
