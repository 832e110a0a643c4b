// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/orderdash/backend/internal/domain/entity"
)

// OrderModel represents the orders table in the database.
type OrderModel struct {
	ID            string          `gorm:"type:varchar(64);primaryKey"`
	OrderNumber   string          `gorm:"type:varchar(64);not null;index"`
	CustomerName  string          `gorm:"type:varchar(255)"`
	CustomerPhone string          `gorm:"type:varchar(64);index"`
	CustomerEmail string          `gorm:"type:varchar(255);index"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status        string          `gorm:"type:varchar(20);not null;index"`
	PaymentStatus string          `gorm:"type:varchar(20);not null;index"`
	PaymentMethod string          `gorm:"type:varchar(50)"`
	EmployeeName  string          `gorm:"type:varchar(255)"`
	UserName      string          `gorm:"type:varchar(255)"`
	OrderDate     time.Time       `gorm:"not null;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	// Line items (not loaded by default, use Preload)
	Items []OrderItemModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the OrderModel.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel represents the order_items table in the database.
// Position preserves the line item order within the parent order.
type OrderItemModel struct {
	ID           uint            `gorm:"primaryKey;autoIncrement"`
	OrderID      string          `gorm:"type:varchar(64);not null;index"`
	Position     int             `gorm:"not null"`
	ItemID       string          `gorm:"type:varchar(64);not null;index"`
	ItemName     string          `gorm:"type:varchar(255);not null"`
	CategoryID   string          `gorm:"type:varchar(64);index"`
	CategoryName string          `gorm:"type:varchar(255)"`
	Quantity     int             `gorm:"not null"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
}

// TableName returns the table name for the OrderItemModel.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToEntity converts an OrderModel to a domain Order entity.
func (m *OrderModel) ToEntity() *entity.Order {
	items := make([]entity.LineItem, len(m.Items))
	for i, im := range m.Items {
		items[i] = entity.LineItem{
			ItemID:       im.ItemID,
			ItemName:     im.ItemName,
			CategoryID:   im.CategoryID,
			CategoryName: im.CategoryName,
			Quantity:     im.Quantity,
			UnitPrice:    im.UnitPrice,
			Subtotal:     im.Subtotal,
		}
	}

	return &entity.Order{
		ID:          m.ID,
		OrderNumber: m.OrderNumber,
		Customer: entity.Customer{
			Name:  m.CustomerName,
			Phone: m.CustomerPhone,
			Email: m.CustomerEmail,
		},
		Items:         items,
		TotalAmount:   m.TotalAmount,
		Status:        entity.OrderStatus(m.Status),
		PaymentStatus: entity.PaymentStatus(m.PaymentStatus),
		PaymentMethod: m.PaymentMethod,
		EmployeeName:  m.EmployeeName,
		UserName:      m.UserName,
		OrderDate:     m.OrderDate,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// OrderFromEntity creates an OrderModel from a domain Order entity.
func OrderFromEntity(order *entity.Order) *OrderModel {
	items := make([]OrderItemModel, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemModel{
			OrderID:      order.ID,
			Position:     i,
			ItemID:       item.ItemID,
			ItemName:     item.ItemName,
			CategoryID:   item.CategoryID,
			CategoryName: item.CategoryName,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			Subtotal:     item.Subtotal,
		}
	}

	return &OrderModel{
		ID:            order.ID,
		OrderNumber:   order.OrderNumber,
		CustomerName:  order.Customer.Name,
		CustomerPhone: order.Customer.Phone,
		CustomerEmail: order.Customer.Email,
		Items:         items,
		TotalAmount:   order.TotalAmount,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		PaymentMethod: order.PaymentMethod,
		EmployeeName:  order.EmployeeName,
		UserName:      order.UserName,
		OrderDate:     order.OrderDate,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}
