package order

import (
	"context"

	"github.com/orderdash/backend/internal/application/adapter"
)

// DeleteOrderInput represents the input for deleting an order.
type DeleteOrderInput struct {
	ID string
}

// DeleteOrderUseCase handles order deletion.
type DeleteOrderUseCase struct {
	orderRepo adapter.OrderRepository
}

// NewDeleteOrderUseCase creates a new DeleteOrderUseCase instance.
func NewDeleteOrderUseCase(orderRepo adapter.OrderRepository) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{
		orderRepo: orderRepo,
	}
}

// Execute removes the order with the given id. Deleting an unknown id is a
// no-op rather than an error.
func (uc *DeleteOrderUseCase) Execute(ctx context.Context, input DeleteOrderInput) error {
	return uc.orderRepo.Delete(ctx, input.ID)
}
