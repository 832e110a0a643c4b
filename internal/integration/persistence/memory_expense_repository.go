package persistence

import (
	"context"
	"sync"

	"github.com/orderdash/backend/internal/application/adapter"
	"github.com/orderdash/backend/internal/domain/entity"
)

// memoryExpenseRepository is an in-memory adapter.ExpenseRepository.
type memoryExpenseRepository struct {
	mu       sync.RWMutex
	expenses []*entity.Expense
}

// NewMemoryExpenseRepository creates a new in-memory expense repository.
func NewMemoryExpenseRepository() adapter.ExpenseRepository {
	return &memoryExpenseRepository{}
}

// Create stores a copy of the expense.
func (r *memoryExpenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *expense
	r.expenses = append(r.expenses, &stored)
	return nil
}

// FindAll returns copies of every expense in arrival order.
func (r *memoryExpenseRepository) FindAll(ctx context.Context) ([]*entity.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	expenses := make([]*entity.Expense, len(r.expenses))
	for i, e := range r.expenses {
		copied := *e
		expenses[i] = &copied
	}
	return expenses, nil
}
