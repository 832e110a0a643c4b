package adapters

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/orderdash/backend/internal/application/adapter"
)

// ResendReportSender implements the adapter.ReportSender interface using
// Resend.
type ResendReportSender struct {
	apiKey    string
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendReportSender creates a new Resend report sender.
func NewResendReportSender(apiKey, fromName, fromEmail string) *ResendReportSender {
	return &ResendReportSender{
		apiKey:    apiKey,
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// IsConfigured reports whether the sender has an API key.
func (c *ResendReportSender) IsConfigured() bool {
	return c.apiKey != ""
}

// Send delivers a report email via Resend.
func (c *ResendReportSender) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	from := fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return nil, err
	}

	return &adapter.SendEmailResult{
		ProviderID: resp.Id,
	}, nil
}

var _ adapter.ReportSender = (*ResendReportSender)(nil)
