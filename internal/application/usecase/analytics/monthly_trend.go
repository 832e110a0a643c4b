package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/orderdash/backend/internal/domain/entity"
)

// TrendMonths is the number of trailing buckets a trend series carries.
const TrendMonths = 6

// monthKeyFormat renders a time as a YYYY-MM bucket key.
const monthKeyFormat = "2006-01"

// TrendBucket is a calendar-month aggregate of order revenue (profit) and
// expense amounts (loss).
type TrendBucket struct {
	Month  string
	Profit decimal.Decimal
	Loss   decimal.Decimal
}

// MonthlyTrend buckets order revenue and expense amounts by calendar month.
// A month that received only revenue or only expense contributions still
// gets a bucket, with the other side at zero. Buckets come back ascending
// by month key, truncated to the most recent TrendMonths.
func MonthlyTrend(orders []*entity.Order, expenses []*entity.Expense) []TrendBucket {
	buckets := make(map[string]*TrendBucket)

	bucketFor := func(key string) *TrendBucket {
		b, ok := buckets[key]
		if !ok {
			b = &TrendBucket{Month: key, Profit: decimal.Zero, Loss: decimal.Zero}
			buckets[key] = b
		}
		return b
	}

	for _, o := range orders {
		b := bucketFor(o.OrderDate.Format(monthKeyFormat))
		b.Profit = b.Profit.Add(o.TotalAmount)
	}
	for _, e := range expenses {
		b := bucketFor(e.ExpenseDate.Format(monthKeyFormat))
		b.Loss = b.Loss.Add(e.Amount)
	}

	result := make([]TrendBucket, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, *b)
	}
	// YYYY-MM keys order correctly as strings.
	sort.Slice(result, func(i, j int) bool {
		return result[i].Month < result[j].Month
	})

	if len(result) > TrendMonths {
		result = result[len(result)-TrendMonths:]
	}
	return result
}
