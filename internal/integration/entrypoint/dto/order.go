package dto

import (
	"time"

	"github.com/orderdash/backend/internal/application/usecase/order"
	"github.com/orderdash/backend/internal/domain/entity"
)

// LineItemRequest represents one line item in an order request body.
type LineItemRequest struct {
	ItemID       string  `json:"item_id" binding:"required"`
	ItemName     string  `json:"item_name" binding:"required,max=255"`
	CategoryID   string  `json:"category_id,omitempty"`
	CategoryName string  `json:"category_name,omitempty" binding:"omitempty,max=255"`
	Quantity     int     `json:"quantity" binding:"min=0"`
	UnitPrice    float64 `json:"unit_price"`
	Subtotal     float64 `json:"subtotal"`
}

// CustomerRequest represents the customer block in an order request body.
type CustomerRequest struct {
	Name  string `json:"name,omitempty" binding:"omitempty,max=255"`
	Phone string `json:"phone,omitempty" binding:"omitempty,max=64"`
	Email string `json:"email,omitempty" binding:"omitempty,email"`
}

// CreateOrderRequest represents the request body for order creation.
type CreateOrderRequest struct {
	OrderNumber   string            `json:"order_number" binding:"required,max=64"`
	Customer      CustomerRequest   `json:"customer"`
	Items         []LineItemRequest `json:"items"`
	TotalAmount   float64           `json:"total_amount"`
	Status        string            `json:"status,omitempty" binding:"omitempty,oneof=pending processing completed cancelled"`
	PaymentStatus string            `json:"payment_status,omitempty" binding:"omitempty,oneof=pending paid cancelled"`
	PaymentMethod string            `json:"payment_method,omitempty" binding:"omitempty,max=50"`
	EmployeeName  string            `json:"employee_name,omitempty" binding:"omitempty,max=255"`
	UserName      string            `json:"user_name,omitempty" binding:"omitempty,max=255"`
	OrderDate     string            `json:"order_date,omitempty"`
}

// UpdateOrderRequest represents the request body for order update. Absent
// fields leave the stored value untouched; the order id is never updatable.
type UpdateOrderRequest struct {
	OrderNumber   *string            `json:"order_number,omitempty" binding:"omitempty,max=64"`
	Customer      *CustomerRequest   `json:"customer,omitempty"`
	Items         *[]LineItemRequest `json:"items,omitempty"`
	TotalAmount   *float64           `json:"total_amount,omitempty"`
	Status        *string            `json:"status,omitempty" binding:"omitempty,oneof=pending processing completed cancelled"`
	PaymentStatus *string            `json:"payment_status,omitempty" binding:"omitempty,oneof=pending paid cancelled"`
	PaymentMethod *string            `json:"payment_method,omitempty" binding:"omitempty,max=50"`
	EmployeeName  *string            `json:"employee_name,omitempty" binding:"omitempty,max=255"`
	UserName      *string            `json:"user_name,omitempty" binding:"omitempty,max=255"`
	OrderDate     *string            `json:"order_date,omitempty"`
}

// LineItemResponse represents one line item in API responses.
type LineItemResponse struct {
	ItemID       string `json:"item_id"`
	ItemName     string `json:"item_name"`
	CategoryID   string `json:"category_id,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
	Quantity     int    `json:"quantity"`
	UnitPrice    string `json:"unit_price"`
	Subtotal     string `json:"subtotal"`
}

// CustomerResponse represents the customer block in API responses.
type CustomerResponse struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// OrderResponse represents a single order in API responses.
type OrderResponse struct {
	ID            string             `json:"id"`
	OrderNumber   string             `json:"order_number"`
	Customer      CustomerResponse   `json:"customer"`
	Items         []LineItemResponse `json:"items"`
	TotalAmount   string             `json:"total_amount"`
	Status        string             `json:"status"`
	PaymentStatus string             `json:"payment_status"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	EmployeeName  string             `json:"employee_name,omitempty"`
	UserName      string             `json:"user_name,omitempty"`
	OrderDate     time.Time          `json:"order_date"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// PaginationResponse represents pagination information in API responses.
type PaginationResponse struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// SortResponse echoes the sort state the listing was produced with.
type SortResponse struct {
	Column    string `json:"column,omitempty"`
	Direction string `json:"direction,omitempty"`
}

// OrderListResponse represents the response for listing orders.
type OrderListResponse struct {
	Orders     []OrderResponse    `json:"orders"`
	Pagination PaginationResponse `json:"pagination"`
	Sort       SortResponse       `json:"sort"`
}

// ToOrderResponse converts a domain Order entity to an OrderResponse DTO.
func ToOrderResponse(o *entity.Order) OrderResponse {
	items := make([]LineItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = LineItemResponse{
			ItemID:       item.ItemID,
			ItemName:     item.ItemName,
			CategoryID:   item.CategoryID,
			CategoryName: item.CategoryName,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice.StringFixed(2),
			Subtotal:     item.Subtotal.StringFixed(2),
		}
	}

	return OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Customer: CustomerResponse{
			Name:  o.Customer.Name,
			Phone: o.Customer.Phone,
			Email: o.Customer.Email,
		},
		Items:         items,
		TotalAmount:   o.TotalAmount.StringFixed(2),
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		PaymentMethod: o.PaymentMethod,
		EmployeeName:  o.EmployeeName,
		UserName:      o.UserName,
		OrderDate:     o.OrderDate,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// ToOrderListResponse converts a listing output to an OrderListResponse DTO.
func ToOrderListResponse(output *order.ListOrdersOutput) OrderListResponse {
	orders := make([]OrderResponse, len(output.Orders))
	for i, o := range output.Orders {
		orders[i] = ToOrderResponse(o)
	}

	return OrderListResponse{
		Orders: orders,
		Pagination: PaginationResponse{
			Page:       output.Pagination.Page,
			PageSize:   output.Pagination.PageSize,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
		},
		Sort: SortResponse{
			Column:    string(output.Sort.Column),
			Direction: string(output.Sort.Direction),
		},
	}
}
