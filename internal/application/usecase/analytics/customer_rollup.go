package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/orderdash/backend/internal/domain/entity"
)

// CustomerAnalytics is the per-customer lifetime rollup. Key is the display
// form of the customer's de-duplication key: phone, else email, else the
// literal "unknown".
type CustomerAnalytics struct {
	Key               string
	Name              string
	TotalOrders       int
	TotalAmount       decimal.Decimal
	AverageOrderValue decimal.Decimal
	LastOrderDate     time.Time
}

// ByCustomer groups orders by the discriminated customer key. TotalAmount
// sums the stored order totals; LastOrderDate is the maximum order_date per
// key, compared as instants rather than strings so year boundaries never
// reorder it. Orders with neither phone nor email all land in one "unknown"
// bucket.
func ByCustomer(orders []*entity.Order) []CustomerAnalytics {
	index := make(map[entity.CustomerKey]int)
	result := make([]CustomerAnalytics, 0)

	for _, o := range orders {
		key := o.Customer.Key()
		i, ok := index[key]
		if !ok {
			i = len(result)
			index[key] = i
			result = append(result, CustomerAnalytics{
				Key:               key.String(),
				Name:              o.Customer.Name,
				TotalAmount:       decimal.Zero,
				AverageOrderValue: decimal.Zero,
			})
		}
		result[i].TotalOrders++
		result[i].TotalAmount = result[i].TotalAmount.Add(o.TotalAmount)
		if o.OrderDate.After(result[i].LastOrderDate) {
			result[i].LastOrderDate = o.OrderDate
		}
	}

	for i := range result {
		result[i].AverageOrderValue = safeDiv(result[i].TotalAmount, int64(result[i].TotalOrders))
	}

	return result
}
