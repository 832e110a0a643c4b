package dto

import "time"

// SendReportRequest represents the request body for emailing a sales report.
// An empty recipient falls back to the configured report recipient.
type SendReportRequest struct {
	Recipient string `json:"recipient,omitempty" binding:"omitempty,email"`
}

// SendReportResponse represents the response for a sent report.
type SendReportResponse struct {
	Message    string `json:"message"`
	ProviderID string `json:"provider_id,omitempty"`
}

// InsightResponse represents the response for a generated sales insight.
type InsightResponse struct {
	Insight     string    `json:"insight"`
	GeneratedAt time.Time `json:"generated_at"`
}
