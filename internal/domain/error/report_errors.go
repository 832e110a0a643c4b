// Package error defines domain-specific errors for the OrderDash application.
package error

import "errors"

// Report and insight errors.
var (
	// ErrEmailNotConfigured is returned when report delivery is requested
	// without a Resend API key or recipient.
	ErrEmailNotConfigured = errors.New("report email is not configured")

	// ErrReportSendFailed is returned when the email provider rejects the
	// report.
	ErrReportSendFailed = errors.New("failed to send report email")

	// ErrInsightNotConfigured is returned when the AI insight service has no
	// API key.
	ErrInsightNotConfigured = errors.New("insight service is not configured")

	// ErrInsightGenerationFailed is returned when the AI service fails to
	// produce a summary.
	ErrInsightGenerationFailed = errors.New("failed to generate insight")
)

// ReportErrorCode defines error codes for report and insight errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	ErrCodeEmailNotConfigured      ReportErrorCode = "RPT-010001"
	ErrCodeInsightNotConfigured    ReportErrorCode = "RPT-010002"
	ErrCodeReportSendFailed        ReportErrorCode = "RPT-990001"
	ErrCodeInsightGenerationFailed ReportErrorCode = "RPT-990002"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
