package adapter

import (
	"context"

	"github.com/orderdash/backend/internal/domain/entity"
)

// ExpenseRepository stores operating expenses, the loss input of the monthly
// trend series.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error

	// FindAll returns every expense in arrival order.
	FindAll(ctx context.Context) ([]*entity.Expense, error)
}
