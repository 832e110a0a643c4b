package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/orderdash/backend/internal/domain/entity"
)

func trendOrder(total string, orderDate time.Time) *entity.Order {
	o := orderWith(total)
	o.OrderDate = orderDate
	return o
}

func trendExpense(amount string, expenseDate time.Time) *entity.Expense {
	return &entity.Expense{
		Description: "expense",
		Amount:      dec(amount),
		ExpenseDate: expenseDate,
	}
}

func TestMonthlyTrendBucketsBothSides(t *testing.T) {
	orders := []*entity.Order{
		trendOrder("100", date(2025, time.January, 10)),
		trendOrder("50", date(2025, time.February, 5)),
	}
	expenses := []*entity.Expense{
		trendExpense("30", date(2025, time.February, 20)),
		trendExpense("20", date(2025, time.March, 1)),
	}

	result := MonthlyTrend(orders, expenses)

	if len(result) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(result))
	}

	expect := []struct {
		month  string
		profit string
		loss   string
	}{
		{"2025-01", "100", "0"},
		{"2025-02", "50", "30"},
		{"2025-03", "0", "20"},
	}
	for i, want := range expect {
		got := result[i]
		if got.Month != want.month {
			t.Errorf("bucket %d: expected month %s, got %s", i, want.month, got.Month)
		}
		if !got.Profit.Equal(dec(want.profit)) {
			t.Errorf("bucket %s: expected profit %s, got %s", want.month, want.profit, got.Profit)
		}
		if !got.Loss.Equal(dec(want.loss)) {
			t.Errorf("bucket %s: expected loss %s, got %s", want.month, want.loss, got.Loss)
		}
	}
}

func TestMonthlyTrendTruncatesToMostRecentMonths(t *testing.T) {
	var orders []*entity.Order
	for month := 1; month <= 8; month++ {
		orders = append(orders, trendOrder("10", date(2025, time.Month(month), 15)))
	}

	result := MonthlyTrend(orders, nil)

	if len(result) != TrendMonths {
		t.Fatalf("expected %d buckets, got %d", TrendMonths, len(result))
	}
	if result[0].Month != "2025-03" {
		t.Errorf("expected earliest kept bucket 2025-03, got %s", result[0].Month)
	}
	if result[len(result)-1].Month != "2025-08" {
		t.Errorf("expected latest bucket 2025-08, got %s", result[len(result)-1].Month)
	}
}

func TestMonthlyTrendSortsAcrossYears(t *testing.T) {
	orders := []*entity.Order{
		trendOrder("10", date(2025, time.January, 1)),
		trendOrder("10", date(2024, time.December, 1)),
		trendOrder("10", date(2024, time.November, 1)),
	}

	result := MonthlyTrend(orders, nil)

	months := make([]string, len(result))
	for i, b := range result {
		months[i] = b.Month
	}
	want := fmt.Sprintf("%v", []string{"2024-11", "2024-12", "2025-01"})
	if fmt.Sprintf("%v", months) != want {
		t.Fatalf("expected %s, got %v", want, months)
	}
}

func TestMonthlyTrendEmptyInput(t *testing.T) {
	if result := MonthlyTrend(nil, nil); len(result) != 0 {
		t.Fatalf("expected no buckets, got %d", len(result))
	}
}
