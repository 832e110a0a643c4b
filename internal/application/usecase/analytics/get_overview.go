package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/orderdash/backend/internal/application/adapter"
)

// GetOverviewOutput is the headline card set of the dashboard: current
// calendar-month totals with month-over-month growth, plus a week-over-week
// revenue comparison. All growth figures share the zero-previous guard.
type GetOverviewOutput struct {
	TotalRevenue         decimal.Decimal
	RevenueGrowthPct     decimal.Decimal
	TotalOrders          int
	OrdersGrowthPct      decimal.Decimal
	TotalExpenses        decimal.Decimal
	ExpenseGrowthPct     decimal.Decimal
	WeekRevenue          decimal.Decimal
	WeekRevenueGrowthPct decimal.Decimal
}

// GetOverviewUseCase computes the overview cards. The clock is injected so
// period boundaries are testable.
type GetOverviewUseCase struct {
	orderRepo   adapter.OrderRepository
	expenseRepo adapter.ExpenseRepository
	now         func() time.Time
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(orderRepo adapter.OrderRepository, expenseRepo adapter.ExpenseRepository) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		orderRepo:   orderRepo,
		expenseRepo: expenseRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the use case clock. Used by tests to pin period
// boundaries.
func (uc *GetOverviewUseCase) WithClock(now func() time.Time) *GetOverviewUseCase {
	uc.now = now
	return uc
}

// Execute computes the overview for the current month and week.
func (uc *GetOverviewUseCase) Execute(ctx context.Context) (*GetOverviewOutput, error) {
	orders, err := uc.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevMonthStart := monthStart.AddDate(0, -1, 0)
	weekStart := now.AddDate(0, 0, -7)
	prevWeekStart := now.AddDate(0, 0, -14)

	var (
		monthRevenue     = decimal.Zero
		prevMonthRevenue = decimal.Zero
		weekRevenue      = decimal.Zero
		prevWeekRevenue  = decimal.Zero
		monthOrders      int
		prevMonthOrders  int
	)

	for _, o := range orders {
		if inWindow(o.OrderDate, monthStart, now) {
			monthRevenue = monthRevenue.Add(o.TotalAmount)
			monthOrders++
		} else if inWindow(o.OrderDate, prevMonthStart, monthStart) {
			prevMonthRevenue = prevMonthRevenue.Add(o.TotalAmount)
			prevMonthOrders++
		}
		if inWindow(o.OrderDate, weekStart, now) {
			weekRevenue = weekRevenue.Add(o.TotalAmount)
		} else if inWindow(o.OrderDate, prevWeekStart, weekStart) {
			prevWeekRevenue = prevWeekRevenue.Add(o.TotalAmount)
		}
	}

	monthExpenses := decimal.Zero
	prevMonthExpenses := decimal.Zero
	for _, e := range expenses {
		if inWindow(e.ExpenseDate, monthStart, now) {
			monthExpenses = monthExpenses.Add(e.Amount)
		} else if inWindow(e.ExpenseDate, prevMonthStart, monthStart) {
			prevMonthExpenses = prevMonthExpenses.Add(e.Amount)
		}
	}

	return &GetOverviewOutput{
		TotalRevenue:         monthRevenue,
		RevenueGrowthPct:     GrowthRate(monthRevenue, prevMonthRevenue),
		TotalOrders:          monthOrders,
		OrdersGrowthPct:      GrowthRate(decimal.NewFromInt(int64(monthOrders)), decimal.NewFromInt(int64(prevMonthOrders))),
		TotalExpenses:        monthExpenses,
		ExpenseGrowthPct:     GrowthRate(monthExpenses, prevMonthExpenses),
		WeekRevenue:          weekRevenue,
		WeekRevenueGrowthPct: GrowthRate(weekRevenue, prevWeekRevenue),
	}, nil
}

// inWindow reports whether t falls in [start, end).
func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}
