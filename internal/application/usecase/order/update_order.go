package order

import (
	"context"

	"github.com/orderdash/backend/internal/application/adapter"
	"github.com/orderdash/backend/internal/domain/entity"
	domainerror "github.com/orderdash/backend/internal/domain/error"
)

// UpdateOrderInput represents the input for updating an order.
type UpdateOrderInput struct {
	ID    string
	Patch adapter.OrderPatch
}

// UpdateOrderOutput represents the output of updating an order.
type UpdateOrderOutput struct {
	Order *entity.Order
}

// UpdateOrderUseCase handles partial order updates.
type UpdateOrderUseCase struct {
	orderRepo adapter.OrderRepository
}

// NewUpdateOrderUseCase creates a new UpdateOrderUseCase instance.
func NewUpdateOrderUseCase(orderRepo adapter.OrderRepository) *UpdateOrderUseCase {
	return &UpdateOrderUseCase{
		orderRepo: orderRepo,
	}
}

// Execute overlays the patch onto the stored order. Updating an unknown id
// surfaces ErrOrderNotFound so the caller can decide the user-facing
// behavior.
func (uc *UpdateOrderUseCase) Execute(ctx context.Context, input UpdateOrderInput) (*UpdateOrderOutput, error) {
	if input.Patch.TotalAmount != nil && input.Patch.TotalAmount.IsNegative() {
		return nil, domainerror.NewOrderError(
			domainerror.ErrCodeInvalidOrderTotal,
			"total_amount must not be negative",
			domainerror.ErrInvalidOrderTotal,
		)
	}
	if input.Patch.Items != nil {
		for _, item := range *input.Patch.Items {
			if item.Quantity < 0 || item.UnitPrice.IsNegative() {
				return nil, domainerror.NewOrderError(
					domainerror.ErrCodeInvalidLineItem,
					"line item quantity and unit_price must not be negative",
					domainerror.ErrInvalidLineItem,
				)
			}
		}
	}

	updated, err := uc.orderRepo.Update(ctx, input.ID, input.Patch)
	if err != nil {
		return nil, err
	}

	return &UpdateOrderOutput{Order: updated}, nil
}
