package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/orderdash/backend/internal/application/adapter"
)

// GeminiInsightService implements the adapter.InsightService using Google
// Gemini.
type GeminiInsightService struct {
	apiKey    string
	modelName string
}

// NewGeminiInsightService creates a new Gemini insight service instance.
func NewGeminiInsightService(apiKey string) *GeminiInsightService {
	return &GeminiInsightService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiInsightService) IsAvailable() bool {
	return s.apiKey != ""
}

// Summarize asks Gemini for a short natural-language read of the sales
// metrics.
func (s *GeminiInsightService) Summarize(ctx context.Context, request *adapter.InsightRequest) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(request)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractText(resp)
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiInsightService) buildPrompt(request *adapter.InsightRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are a retail business analyst. Write a short plain-text summary (3 to 5 sentences) of the sales figures below for a store manager. Mention the strongest and weakest signals and one concrete suggestion. Do not use markdown or bullet points.

`)

	fmt.Fprintf(&sb, "Period: %s\n", request.PeriodLabel)
	fmt.Fprintf(&sb, "Total revenue: %s (%s%% vs previous period)\n", request.TotalRevenue, request.RevenueGrowthPct)
	fmt.Fprintf(&sb, "Total orders: %d (%s%% vs previous period)\n", request.TotalOrders, request.OrdersGrowthPct)

	sb.WriteString("\nTop selling items:\n")
	for _, item := range request.TopItems {
		fmt.Fprintf(&sb, "- %s: %s\n", item.Name, item.Revenue)
	}

	sb.WriteString("\nRevenue by category:\n")
	for _, cat := range request.TopCategories {
		fmt.Fprintf(&sb, "- %s: %s\n", cat.Name, cat.Revenue)
	}

	return sb.String()
}

// extractText pulls the text content out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	content := strings.TrimSpace(sb.String())
	if content == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return content, nil
}

var _ adapter.InsightService = (*GeminiInsightService)(nil)
