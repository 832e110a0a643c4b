package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/orderdash/backend/internal/application/adapter"
	"github.com/orderdash/backend/internal/domain/entity"
)

// seedOrder is one row of demo data.
type seedOrder struct {
	orderNumber   string
	customer      entity.Customer
	items         []entity.LineItem
	total         string
	status        entity.OrderStatus
	paymentStatus entity.PaymentStatus
	paymentMethod string
	employee      string
	user          string
	daysAgo       int
}

// SeedDemoData fills the repositories with a small realistic data set. Used
// when the server runs without a database so the dashboard has something to
// show.
func SeedDemoData(ctx context.Context, orderRepo adapter.OrderRepository, expenseRepo adapter.ExpenseRepository) error {
	now := time.Now().UTC()

	seeds := []seedOrder{
		{
			orderNumber: "SO-1001",
			customer:    entity.Customer{Name: "Abebe Kebede", Phone: "+251911234567", Email: "abebe.kebede@example.com"},
			items: []entity.LineItem{
				lineItem("itm-esp", "Espresso", "cat-drinks", "Drinks", 2, "3.50"),
				lineItem("itm-crs", "Croissant", "cat-bakery", "Bakery", 1, "4.25"),
			},
			total: "11.25", status: entity.OrderStatusCompleted, paymentStatus: entity.PaymentStatusPaid,
			paymentMethod: "card", employee: "Jane Smith", user: "jane.smith", daysAgo: 2,
		},
		{
			orderNumber: "SO-1002",
			customer:    entity.Customer{Name: "Alice Johnson", Email: "alice.johnson@example.com"},
			items: []entity.LineItem{
				lineItem("itm-lat", "Latte", "cat-drinks", "Drinks", 3, "4.75"),
			},
			total: "14.25", status: entity.OrderStatusCompleted, paymentStatus: entity.PaymentStatusPaid,
			paymentMethod: "cash", employee: "John Doe", user: "john.doe", daysAgo: 5,
		},
		{
			orderNumber: "SO-1003",
			customer:    entity.Customer{Name: "Walk-in"},
			items: []entity.LineItem{
				lineItem("itm-esp", "Espresso", "cat-drinks", "Drinks", 1, "3.50"),
				lineItem("itm-bgl", "Bagel", "cat-bakery", "Bakery", 2, "3.00"),
			},
			total: "9.50", status: entity.OrderStatusProcessing, paymentStatus: entity.PaymentStatusPending,
			paymentMethod: "cash", employee: "Jane Smith", user: "jane.smith", daysAgo: 1,
		},
		{
			orderNumber: "SO-1004",
			customer:    entity.Customer{Name: "Abebe Kebede", Phone: "+251911234567"},
			items: []entity.LineItem{
				lineItem("itm-sbx", "Sandwich Box", "cat-food", "Food", 1, "12.00"),
			},
			total: "12.00", status: entity.OrderStatusPending, paymentStatus: entity.PaymentStatusPending,
			paymentMethod: "transfer", employee: "John Doe", user: "john.doe", daysAgo: 0,
		},
		{
			orderNumber: "SO-1005",
			customer:    entity.Customer{Name: "Bekele Tadesse", Phone: "+251922334455"},
			items: []entity.LineItem{
				lineItem("itm-lat", "Latte", "cat-drinks", "Drinks", 2, "4.75"),
				lineItem("itm-sbx", "Sandwich Box", "cat-food", "Food", 2, "12.00"),
			},
			total: "33.50", status: entity.OrderStatusCancelled, paymentStatus: entity.PaymentStatusCancelled,
			paymentMethod: "card", employee: "Jane Smith", user: "jane.smith", daysAgo: 40,
		},
	}

	for _, s := range seeds {
		orderDate := now.AddDate(0, 0, -s.daysAgo)
		_, err := orderRepo.Create(ctx, &entity.Order{
			OrderNumber:   s.orderNumber,
			Customer:      s.customer,
			Items:         s.items,
			TotalAmount:   decimal.RequireFromString(s.total),
			Status:        s.status,
			PaymentStatus: s.paymentStatus,
			PaymentMethod: s.paymentMethod,
			EmployeeName:  s.employee,
			UserName:      s.user,
			OrderDate:     orderDate,
			CreatedAt:     orderDate,
			UpdatedAt:     orderDate,
		})
		if err != nil {
			return fmt.Errorf("failed to seed order %s: %w", s.orderNumber, err)
		}
	}

	expenses := []struct {
		description string
		amount      string
		daysAgo     int
	}{
		{"Coffee bean restock", "180.00", 12},
		{"Storefront rent", "650.00", 28},
		{"Utility bill", "95.40", 45},
	}
	for _, e := range expenses {
		exp := entity.NewExpense(e.description, decimal.RequireFromString(e.amount), now.AddDate(0, 0, -e.daysAgo))
		if err := expenseRepo.Create(ctx, exp); err != nil {
			return fmt.Errorf("failed to seed expense %q: %w", e.description, err)
		}
	}

	return nil
}

func lineItem(itemID, itemName, categoryID, categoryName string, quantity int, unitPrice string) entity.LineItem {
	price := decimal.RequireFromString(unitPrice)
	return entity.LineItem{
		ItemID:       itemID,
		ItemName:     itemName,
		CategoryID:   categoryID,
		CategoryName: categoryName,
		Quantity:     quantity,
		UnitPrice:    price,
		Subtotal:     price.Mul(decimal.NewFromInt(int64(quantity))),
	}
}
