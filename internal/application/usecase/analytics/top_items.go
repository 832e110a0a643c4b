package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/orderdash/backend/internal/domain/entity"
)

// DefaultTopItemsLimit is used when a caller does not request a limit.
const DefaultTopItemsLimit = 10

// ItemSalesAnalytics is the per-item sales rollup.
type ItemSalesAnalytics struct {
	ItemID        string
	ItemName      string
	CategoryName  string
	TotalQuantity int
	TotalRevenue  decimal.Decimal
	AveragePrice  decimal.Decimal
}

// TopItems groups all line items by item id, then returns the items sorted
// descending by total revenue, truncated to limit (DefaultTopItemsLimit when
// limit < 1). The sort is stable, so revenue ties keep insertion order.
func TopItems(orders []*entity.Order, limit int) []ItemSalesAnalytics {
	if limit < 1 {
		limit = DefaultTopItemsLimit
	}

	index := make(map[string]int)
	result := make([]ItemSalesAnalytics, 0)

	for _, o := range orders {
		for _, item := range o.Items {
			i, ok := index[item.ItemID]
			if !ok {
				i = len(result)
				index[item.ItemID] = i
				result = append(result, ItemSalesAnalytics{
					ItemID:       item.ItemID,
					ItemName:     item.ItemName,
					CategoryName: item.CategoryName,
					TotalRevenue: decimal.Zero,
					AveragePrice: decimal.Zero,
				})
			}
			result[i].TotalQuantity += item.Quantity
			result[i].TotalRevenue = result[i].TotalRevenue.Add(item.Subtotal)
		}
	}

	for i := range result {
		result[i].AveragePrice = safeDiv(result[i].TotalRevenue, int64(result[i].TotalQuantity))
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalRevenue.GreaterThan(result[j].TotalRevenue)
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result
}
