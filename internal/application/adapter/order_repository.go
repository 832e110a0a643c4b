// Package adapter defines interfaces for external dependencies (ports).
package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/orderdash/backend/internal/domain/entity"
)

// OrderPatch is a partial update for an order. Nil fields are left untouched.
// The order identity is deliberately absent: it is assigned once at creation
// and can never be changed through an update.
type OrderPatch struct {
	OrderNumber   *string
	Customer      *entity.Customer
	Items         *[]entity.LineItem
	TotalAmount   *decimal.Decimal
	Status        *entity.OrderStatus
	PaymentStatus *entity.PaymentStatus
	PaymentMethod *string
	EmployeeName  *string
	UserName      *string
	OrderDate     *time.Time
}

// OrderRepository is the single source of truth for order records.
type OrderRepository interface {
	// Create assigns a fresh unique id to the order, stores it and returns
	// the stored record.
	Create(ctx context.Context, order *entity.Order) (*entity.Order, error)

	// Update overlays the patch onto the order with the given id and returns
	// the updated record. Returns domainerror.ErrOrderNotFound when the id
	// does not exist.
	Update(ctx context.Context, id string, patch OrderPatch) (*entity.Order, error)

	// Delete removes the order with the given id. Deleting an unknown id is
	// a no-op, not an error.
	Delete(ctx context.Context, id string) error

	// FindByID returns the order with the given id, or
	// domainerror.ErrOrderNotFound.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// FindAll returns every order in arrival order. The returned slice and
	// records are owned by the caller.
	FindAll(ctx context.Context) ([]*entity.Order, error)
}

// IDGenerator produces unique, monotonically increasing order identifiers.
// Implementations must never emit the same id twice, even under rapid
// successive calls within one clock tick.
type IDGenerator interface {
	NextID() string
}
