// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// PaymentStatus represents the payment state of an order.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// Customer holds the contact details attached to an order.
// Orders have no customer account reference; identity for analytics is
// derived from the contact fields via Key.
type Customer struct {
	Name  string
	Phone string
	Email string
}

// CustomerKeyKind discriminates how a customer was identified.
type CustomerKeyKind string

const (
	CustomerKeyPhone   CustomerKeyKind = "phone"
	CustomerKeyEmail   CustomerKeyKind = "email"
	CustomerKeyUnknown CustomerKeyKind = "unknown"
)

// CustomerKey is the de-duplication key for customer analytics: phone when
// present, else email, else unknown. Keeping the kind explicit avoids
// collisions between a phone number and an email that stringify identically.
type CustomerKey struct {
	Kind  CustomerKeyKind
	Value string
}

// Key returns the analytics grouping key for the customer.
func (c Customer) Key() CustomerKey {
	if c.Phone != "" {
		return CustomerKey{Kind: CustomerKeyPhone, Value: c.Phone}
	}
	if c.Email != "" {
		return CustomerKey{Kind: CustomerKeyEmail, Value: c.Email}
	}
	return CustomerKey{Kind: CustomerKeyUnknown}
}

// String returns the display form of the key. Unknown customers use the
// literal "unknown" so they aggregate into a single bucket.
func (k CustomerKey) String() string {
	if k.Kind == CustomerKeyUnknown {
		return "unknown"
	}
	return k.Value
}

// LineItem is one item/quantity/price entry within an order.
// Subtotal is stored, not derived: upstream data may legitimately disagree
// with Quantity*UnitPrice and the aggregator must trust the stored value.
type LineItem struct {
	ItemID       string
	ItemName     string
	CategoryID   string
	CategoryName string
	Quantity     int
	UnitPrice    decimal.Decimal
	Subtotal     decimal.Decimal
}

// Order represents a customer transaction in the OrderDash system.
// TotalAmount is independent of the line item subtotals and is never
// reconciled against them.
type Order struct {
	ID            string
	OrderNumber   string
	Customer      Customer
	Items         []LineItem
	TotalAmount   decimal.Decimal
	Status        OrderStatus
	PaymentStatus PaymentStatus
	PaymentMethod string
	EmployeeName  string
	UserName      string
	OrderDate     time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Clone returns a deep copy of the order. Repositories hand out clones so
// query pipelines can never mutate stored state.
func (o *Order) Clone() *Order {
	cloned := *o
	cloned.Items = make([]LineItem, len(o.Items))
	copy(cloned.Items, o.Items)
	return &cloned
}
