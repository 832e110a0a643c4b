package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents an operating expense. Expenses are the loss side of the
// monthly trend series.
type Expense struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	ExpenseDate time.Time
	CreatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(description string, amount decimal.Decimal, expenseDate time.Time) *Expense {
	return &Expense{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		ExpenseDate: expenseDate,
		CreatedAt:   time.Now().UTC(),
	}
}
