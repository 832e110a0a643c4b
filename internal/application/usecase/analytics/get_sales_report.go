package analytics

import (
	"context"

	"github.com/orderdash/backend/internal/application/adapter"
	"github.com/orderdash/backend/internal/application/usecase/order"
)

// GetSalesReportInput represents the input for computing a sales report.
// The criteria are the same ones the order table uses, so the report always
// describes the rows the user is looking at.
type GetSalesReportInput struct {
	Criteria order.FilterCriteria
	TopLimit int
}

// GetSalesReportOutput bundles the four rollups computed from one filtered
// order sequence.
type GetSalesReportOutput struct {
	Categories []CategoryAnalytics
	TopItems   []ItemSalesAnalytics
	Customers  []CustomerAnalytics
	Trend      []TrendBucket
}

// GetSalesReportUseCase computes all analytics views for a criteria set.
type GetSalesReportUseCase struct {
	orderRepo   adapter.OrderRepository
	expenseRepo adapter.ExpenseRepository
}

// NewGetSalesReportUseCase creates a new GetSalesReportUseCase instance.
func NewGetSalesReportUseCase(orderRepo adapter.OrderRepository, expenseRepo adapter.ExpenseRepository) *GetSalesReportUseCase {
	return &GetSalesReportUseCase{
		orderRepo:   orderRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute filters the repository contents once and derives every rollup
// from that single sequence.
func (uc *GetSalesReportUseCase) Execute(ctx context.Context, input GetSalesReportInput) (*GetSalesReportOutput, error) {
	if err := input.Criteria.Validate(); err != nil {
		return nil, err
	}

	orders, err := uc.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := order.ApplyFilter(orders, input.Criteria)

	return &GetSalesReportOutput{
		Categories: ByCategory(filtered),
		TopItems:   TopItems(filtered, input.TopLimit),
		Customers:  ByCustomer(filtered),
		Trend:      MonthlyTrend(filtered, expenses),
	}, nil
}
