package adapter

import "context"

// SendEmailInput holds a rendered report email.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult holds the provider's delivery reference.
type SendEmailResult struct {
	ProviderID string
}

// ReportSender delivers a rendered sales report to a recipient.
type ReportSender interface {
	// IsConfigured reports whether the sender has credentials to deliver mail.
	IsConfigured() bool

	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}
