package order

import (
	"context"

	"github.com/orderdash/backend/internal/application/adapter"
	"github.com/orderdash/backend/internal/domain/entity"
)

// GetOrderInput represents the input for fetching a single order.
type GetOrderInput struct {
	ID string
}

// GetOrderOutput represents the output of fetching a single order.
type GetOrderOutput struct {
	Order *entity.Order
}

// GetOrderUseCase handles single order lookup.
type GetOrderUseCase struct {
	orderRepo adapter.OrderRepository
}

// NewGetOrderUseCase creates a new GetOrderUseCase instance.
func NewGetOrderUseCase(orderRepo adapter.OrderRepository) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo: orderRepo,
	}
}

// Execute fetches the order with the given id.
func (uc *GetOrderUseCase) Execute(ctx context.Context, input GetOrderInput) (*GetOrderOutput, error) {
	order, err := uc.orderRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOrderOutput{Order: order}, nil
}
