// Package analytics contains the reporting rollups and the use cases that
// expose them. Every rollup is a pure function over an already-filtered
// order sequence, so analytics and table views always describe the same set
// of orders.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/orderdash/backend/internal/domain/entity"
)

// CategoryAnalytics is the revenue/quantity/order-count rollup for one
// product category. It is derived on demand and never persisted.
type CategoryAnalytics struct {
	CategoryID        string
	CategoryName      string
	TotalSales        int
	TotalItems        int
	TotalRevenue      decimal.Decimal
	AverageOrderValue decimal.Decimal
}

// ByCategory groups all line items of all orders by category id. TotalSales
// counts line occurrences, TotalItems sums quantities and TotalRevenue sums
// the stored subtotals (stored values are trusted, never recomputed from
// quantity and unit price). Results appear in insertion order of first
// encounter; callers are free to re-sort.
func ByCategory(orders []*entity.Order) []CategoryAnalytics {
	index := make(map[string]int)
	result := make([]CategoryAnalytics, 0)

	for _, o := range orders {
		for _, item := range o.Items {
			i, ok := index[item.CategoryID]
			if !ok {
				i = len(result)
				index[item.CategoryID] = i
				result = append(result, CategoryAnalytics{
					CategoryID:        item.CategoryID,
					CategoryName:      item.CategoryName,
					TotalRevenue:      decimal.Zero,
					AverageOrderValue: decimal.Zero,
				})
			}
			result[i].TotalSales++
			result[i].TotalItems += item.Quantity
			result[i].TotalRevenue = result[i].TotalRevenue.Add(item.Subtotal)
		}
	}

	for i := range result {
		result[i].AverageOrderValue = safeDiv(result[i].TotalRevenue, int64(result[i].TotalSales))
	}

	return result
}

// safeDiv divides revenue by a count, resolving a zero divisor to zero.
// Division by zero in an average is a defined value here, never an error.
func safeDiv(total decimal.Decimal, count int64) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(count))
}
