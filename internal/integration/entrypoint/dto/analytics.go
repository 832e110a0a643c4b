package dto

import (
	"time"

	"github.com/orderdash/backend/internal/application/usecase/analytics"
)

// CategoryAnalyticsResponse represents one category rollup row.
type CategoryAnalyticsResponse struct {
	CategoryID        string `json:"category_id"`
	CategoryName      string `json:"category_name"`
	TotalSales        int    `json:"total_sales"`
	TotalItems        int    `json:"total_items"`
	TotalRevenue      string `json:"total_revenue"`
	AverageOrderValue string `json:"average_order_value"`
}

// ItemSalesResponse represents one top selling item row.
type ItemSalesResponse struct {
	ItemID        string `json:"item_id"`
	ItemName      string `json:"item_name"`
	CategoryName  string `json:"category_name,omitempty"`
	TotalQuantity int    `json:"total_quantity"`
	TotalRevenue  string `json:"total_revenue"`
	AveragePrice  string `json:"average_price"`
}

// CustomerAnalyticsResponse represents one customer rollup row.
type CustomerAnalyticsResponse struct {
	CustomerKey       string    `json:"customer_key"`
	Name              string    `json:"name"`
	TotalOrders       int       `json:"total_orders"`
	TotalAmount       string    `json:"total_amount"`
	AverageOrderValue string    `json:"average_order_value"`
	LastOrderDate     time.Time `json:"last_order_date"`
}

// TrendBucketResponse represents one month of the profit/loss trend.
type TrendBucketResponse struct {
	Month  string `json:"month"`
	Profit string `json:"profit"`
	Loss   string `json:"loss"`
}

// OverviewResponse represents the dashboard overview cards.
type OverviewResponse struct {
	TotalRevenue         string `json:"total_revenue"`
	RevenueGrowthPct     string `json:"revenue_growth_pct"`
	TotalOrders          int    `json:"total_orders"`
	OrdersGrowthPct      string `json:"orders_growth_pct"`
	TotalExpenses        string `json:"total_expenses"`
	ExpenseGrowthPct     string `json:"expense_growth_pct"`
	WeekRevenue          string `json:"week_revenue"`
	WeekRevenueGrowthPct string `json:"week_revenue_growth_pct"`
}

// SalesReportResponse represents the combined analytics report.
type SalesReportResponse struct {
	Categories []CategoryAnalyticsResponse `json:"categories"`
	TopItems   []ItemSalesResponse         `json:"top_items"`
	Customers  []CustomerAnalyticsResponse `json:"customers"`
	Trend      []TrendBucketResponse       `json:"trend"`
}

// ToCategoryAnalyticsResponses converts category rollup rows to DTOs.
func ToCategoryAnalyticsResponses(rows []analytics.CategoryAnalytics) []CategoryAnalyticsResponse {
	out := make([]CategoryAnalyticsResponse, len(rows))
	for i, row := range rows {
		out[i] = CategoryAnalyticsResponse{
			CategoryID:        row.CategoryID,
			CategoryName:      row.CategoryName,
			TotalSales:        row.TotalSales,
			TotalItems:        row.TotalItems,
			TotalRevenue:      row.TotalRevenue.StringFixed(2),
			AverageOrderValue: row.AverageOrderValue.StringFixed(2),
		}
	}
	return out
}

// ToItemSalesResponses converts top item rows to DTOs.
func ToItemSalesResponses(rows []analytics.ItemSalesAnalytics) []ItemSalesResponse {
	out := make([]ItemSalesResponse, len(rows))
	for i, row := range rows {
		out[i] = ItemSalesResponse{
			ItemID:        row.ItemID,
			ItemName:      row.ItemName,
			CategoryName:  row.CategoryName,
			TotalQuantity: row.TotalQuantity,
			TotalRevenue:  row.TotalRevenue.StringFixed(2),
			AveragePrice:  row.AveragePrice.StringFixed(2),
		}
	}
	return out
}

// ToCustomerAnalyticsResponses converts customer rollup rows to DTOs.
func ToCustomerAnalyticsResponses(rows []analytics.CustomerAnalytics) []CustomerAnalyticsResponse {
	out := make([]CustomerAnalyticsResponse, len(rows))
	for i, row := range rows {
		out[i] = CustomerAnalyticsResponse{
			CustomerKey:       row.Key,
			Name:              row.Name,
			TotalOrders:       row.TotalOrders,
			TotalAmount:       row.TotalAmount.StringFixed(2),
			AverageOrderValue: row.AverageOrderValue.StringFixed(2),
			LastOrderDate:     row.LastOrderDate,
		}
	}
	return out
}

// ToTrendBucketResponses converts trend buckets to DTOs.
func ToTrendBucketResponses(rows []analytics.TrendBucket) []TrendBucketResponse {
	out := make([]TrendBucketResponse, len(rows))
	for i, row := range rows {
		out[i] = TrendBucketResponse{
			Month:  row.Month,
			Profit: row.Profit.StringFixed(2),
			Loss:   row.Loss.StringFixed(2),
		}
	}
	return out
}

// ToOverviewResponse converts the overview output to a DTO.
func ToOverviewResponse(output *analytics.GetOverviewOutput) OverviewResponse {
	return OverviewResponse{
		TotalRevenue:         output.TotalRevenue.StringFixed(2),
		RevenueGrowthPct:     output.RevenueGrowthPct.StringFixed(1),
		TotalOrders:          output.TotalOrders,
		OrdersGrowthPct:      output.OrdersGrowthPct.StringFixed(1),
		TotalExpenses:        output.TotalExpenses.StringFixed(2),
		ExpenseGrowthPct:     output.ExpenseGrowthPct.StringFixed(1),
		WeekRevenue:          output.WeekRevenue.StringFixed(2),
		WeekRevenueGrowthPct: output.WeekRevenueGrowthPct.StringFixed(1),
	}
}

// ToSalesReportResponse converts the sales report output to a DTO.
func ToSalesReportResponse(output *analytics.GetSalesReportOutput) SalesReportResponse {
	return SalesReportResponse{
		Categories: ToCategoryAnalyticsResponses(output.Categories),
		TopItems:   ToItemSalesResponses(output.TopItems),
		Customers:  ToCustomerAnalyticsResponses(output.Customers),
		Trend:      ToTrendBucketResponses(output.Trend),
	}
}
