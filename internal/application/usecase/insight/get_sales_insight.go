// Package insight contains the AI sales summary use case.
package insight

import (
	"context"
	"time"

	"github.com/orderdash/backend/internal/application/adapter"
	"github.com/orderdash/backend/internal/application/usecase/analytics"
	domainerror "github.com/orderdash/backend/internal/domain/error"
)

const insightTopLimit = 5

// GetSalesInsightOutput represents the output of generating a sales insight.
type GetSalesInsightOutput struct {
	Insight     string
	GeneratedAt time.Time
}

// GetSalesInsightUseCase summarizes the current sales picture in natural
// language. The model only ever sees derived metrics, never raw orders.
type GetSalesInsightUseCase struct {
	salesReport *analytics.GetSalesReportUseCase
	overview    *analytics.GetOverviewUseCase
	service     adapter.InsightService
}

// NewGetSalesInsightUseCase creates a new GetSalesInsightUseCase instance.
func NewGetSalesInsightUseCase(
	salesReport *analytics.GetSalesReportUseCase,
	overview *analytics.GetOverviewUseCase,
	service adapter.InsightService,
) *GetSalesInsightUseCase {
	return &GetSalesInsightUseCase{
		salesReport: salesReport,
		overview:    overview,
		service:     service,
	}
}

// Execute builds the metric digest and asks the insight service for a summary.
func (uc *GetSalesInsightUseCase) Execute(ctx context.Context) (*GetSalesInsightOutput, error) {
	if !uc.service.IsAvailable() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInsightNotConfigured,
			"insight service is not configured",
			domainerror.ErrInsightNotConfigured,
		)
	}

	overviewOut, err := uc.overview.Execute(ctx)
	if err != nil {
		return nil, err
	}
	reportOut, err := uc.salesReport.Execute(ctx, analytics.GetSalesReportInput{TopLimit: insightTopLimit})
	if err != nil {
		return nil, err
	}

	request := &adapter.InsightRequest{
		PeriodLabel:      "current month",
		TotalRevenue:     overviewOut.TotalRevenue.StringFixed(2),
		RevenueGrowthPct: overviewOut.RevenueGrowthPct.StringFixed(1),
		TotalOrders:      overviewOut.TotalOrders,
		OrdersGrowthPct:  overviewOut.OrdersGrowthPct.StringFixed(1),
	}
	for i, item := range reportOut.TopItems {
		if i >= insightTopLimit {
			break
		}
		request.TopItems = append(request.TopItems, adapter.InsightItem{
			Name:    item.ItemName,
			Revenue: item.TotalRevenue.StringFixed(2),
		})
	}
	for i, cat := range reportOut.Categories {
		if i >= insightTopLimit {
			break
		}
		request.TopCategories = append(request.TopCategories, adapter.InsightItem{
			Name:    cat.CategoryName,
			Revenue: cat.TotalRevenue.StringFixed(2),
		})
	}

	summary, err := uc.service.Summarize(ctx, request)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInsightGenerationFailed,
			"failed to generate sales insight",
			err,
		)
	}

	return &GetSalesInsightOutput{
		Insight:     summary,
		GeneratedAt: time.Now().UTC(),
	}, nil
}
