package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/orderdash/backend/internal/application/adapter"
	"github.com/orderdash/backend/internal/domain/entity"
	domainerror "github.com/orderdash/backend/internal/domain/error"
)

// CreateOrderInput represents the input for creating an order. The identity
// is assigned by the repository, never supplied by the caller.
type CreateOrderInput struct {
	OrderNumber   string
	Customer      entity.Customer
	Items         []entity.LineItem
	TotalAmount   decimal.Decimal
	Status        entity.OrderStatus
	PaymentStatus entity.PaymentStatus
	PaymentMethod string
	EmployeeName  string
	UserName      string
	OrderDate     time.Time
}

// CreateOrderOutput represents the output of creating an order.
type CreateOrderOutput struct {
	Order *entity.Order
}

// CreateOrderUseCase handles order creation.
type CreateOrderUseCase struct {
	orderRepo adapter.OrderRepository
}

// NewCreateOrderUseCase creates a new CreateOrderUseCase instance.
func NewCreateOrderUseCase(orderRepo adapter.OrderRepository) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
	}
}

// Execute validates the input and stores a new order.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, input CreateOrderInput) (*CreateOrderOutput, error) {
	if input.TotalAmount.IsNegative() {
		return nil, domainerror.NewOrderError(
			domainerror.ErrCodeInvalidOrderTotal,
			"total_amount must not be negative",
			domainerror.ErrInvalidOrderTotal,
		)
	}
	for _, item := range input.Items {
		if item.Quantity < 0 || item.UnitPrice.IsNegative() {
			return nil, domainerror.NewOrderError(
				domainerror.ErrCodeInvalidLineItem,
				"line item quantity and unit_price must not be negative",
				domainerror.ErrInvalidLineItem,
			)
		}
	}

	now := time.Now().UTC()
	orderDate := input.OrderDate
	if orderDate.IsZero() {
		orderDate = now
	}
	status := input.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	paymentStatus := input.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = entity.PaymentStatusPending
	}

	order := &entity.Order{
		OrderNumber:   input.OrderNumber,
		Customer:      input.Customer,
		Items:         input.Items,
		TotalAmount:   input.TotalAmount,
		Status:        status,
		PaymentStatus: paymentStatus,
		PaymentMethod: input.PaymentMethod,
		EmployeeName:  input.EmployeeName,
		UserName:      input.UserName,
		OrderDate:     orderDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := uc.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	return &CreateOrderOutput{Order: created}, nil
}
