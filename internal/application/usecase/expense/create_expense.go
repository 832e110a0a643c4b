// Package expense contains expense management use cases.
package expense

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/orderdash/backend/internal/application/adapter"
	"github.com/orderdash/backend/internal/domain/entity"
	domainerror "github.com/orderdash/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for recording an expense.
type CreateExpenseInput struct {
	Description string
	Amount      decimal.Decimal
	ExpenseDate time.Time
}

// CreateExpenseOutput represents the output of recording an expense.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase records an operating expense.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute validates and stores the expense.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"expense amount cannot be negative",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	expenseDate := input.ExpenseDate
	if expenseDate.IsZero() {
		expenseDate = time.Now().UTC()
	}

	exp := entity.NewExpense(input.Description, input.Amount, expenseDate)
	if err := uc.expenseRepo.Create(ctx, exp); err != nil {
		return nil, err
	}

	return &CreateExpenseOutput{Expense: exp}, nil
}
