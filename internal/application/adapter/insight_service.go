package adapter

import "context"

// InsightRequest carries the computed metrics an insight is generated from.
// The service receives derived numbers only, never raw order records.
type InsightRequest struct {
	PeriodLabel      string
	TotalRevenue     string
	RevenueGrowthPct string
	TotalOrders      int
	OrdersGrowthPct  string
	TopItems         []InsightItem
	TopCategories    []InsightItem
}

// InsightItem is one named metric line in an insight request.
type InsightItem struct {
	Name    string
	Revenue string
}

// InsightService produces a natural-language summary of a sales report.
type InsightService interface {
	// IsAvailable reports whether the service is configured.
	IsAvailable() bool

	Summarize(ctx context.Context, request *InsightRequest) (string, error)
}
