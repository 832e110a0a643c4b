package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/orderdash/backend/internal/application/adapter"
	"github.com/orderdash/backend/internal/application/usecase/order"
	"github.com/orderdash/backend/internal/domain/entity"
	domainerror "github.com/orderdash/backend/internal/domain/error"
	"github.com/orderdash/backend/internal/integration/entrypoint/dto"
)

// OrderController handles order endpoints.
type OrderController struct {
	listUseCase   *order.ListOrdersUseCase
	getUseCase    *order.GetOrderUseCase
	createUseCase *order.CreateOrderUseCase
	updateUseCase *order.UpdateOrderUseCase
	deleteUseCase *order.DeleteOrderUseCase
}

// NewOrderController creates a new order controller instance.
func NewOrderController(
	listUseCase *order.ListOrdersUseCase,
	getUseCase *order.GetOrderUseCase,
	createUseCase *order.CreateOrderUseCase,
	updateUseCase *order.UpdateOrderUseCase,
	deleteUseCase *order.DeleteOrderUseCase,
) *OrderController {
	return &OrderController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /orders requests.
func (c *OrderController) List(ctx *gin.Context) {
	criteria, ok := parseFilterCriteria(ctx)
	if !ok {
		return
	}

	input := order.ListOrdersInput{
		Criteria:      criteria,
		SortColumn:    order.SortColumn(ctx.Query("sort_column")),
		SortDirection: order.SortDirection(ctx.Query("sort_direction")),
	}
	input.Page, input.PageSize = parsePagination(ctx)

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(output))
}

// Get handles GET /orders/:id requests.
func (c *OrderController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context(), order.GetOrderInput{
		ID: ctx.Param("id"),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(output.Order))
}

// Create handles POST /orders requests.
func (c *OrderController) Create(ctx *gin.Context) {
	var req dto.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := order.CreateOrderInput{
		OrderNumber: req.OrderNumber,
		Customer: entity.Customer{
			Name:  req.Customer.Name,
			Phone: req.Customer.Phone,
			Email: req.Customer.Email,
		},
		Items:         toLineItems(req.Items),
		TotalAmount:   decimal.NewFromFloat(req.TotalAmount),
		Status:        entity.OrderStatus(req.Status),
		PaymentStatus: entity.PaymentStatus(req.PaymentStatus),
		PaymentMethod: req.PaymentMethod,
		EmployeeName:  req.EmployeeName,
		UserName:      req.UserName,
	}

	if req.OrderDate != "" {
		orderDate, err := time.Parse(queryDateLayout, req.OrderDate)
		if err != nil {
			orderDate, err = time.Parse(time.RFC3339, req.OrderDate)
		}
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid order_date format. Use YYYY-MM-DD or RFC3339",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		input.OrderDate = orderDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOrderResponse(output.Order))
}

// Update handles PATCH /orders/:id requests.
func (c *OrderController) Update(ctx *gin.Context) {
	var req dto.UpdateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	patch := adapter.OrderPatch{
		OrderNumber:   req.OrderNumber,
		PaymentMethod: req.PaymentMethod,
		EmployeeName:  req.EmployeeName,
		UserName:      req.UserName,
	}

	if req.Customer != nil {
		patch.Customer = &entity.Customer{
			Name:  req.Customer.Name,
			Phone: req.Customer.Phone,
			Email: req.Customer.Email,
		}
	}
	if req.Items != nil {
		items := toLineItems(*req.Items)
		patch.Items = &items
	}
	if req.TotalAmount != nil {
		total := decimal.NewFromFloat(*req.TotalAmount)
		patch.TotalAmount = &total
	}
	if req.Status != nil {
		status := entity.OrderStatus(*req.Status)
		patch.Status = &status
	}
	if req.PaymentStatus != nil {
		paymentStatus := entity.PaymentStatus(*req.PaymentStatus)
		patch.PaymentStatus = &paymentStatus
	}
	if req.OrderDate != nil {
		orderDate, err := time.Parse(queryDateLayout, *req.OrderDate)
		if err != nil {
			orderDate, err = time.Parse(time.RFC3339, *req.OrderDate)
		}
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid order_date format. Use YYYY-MM-DD or RFC3339",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		patch.OrderDate = &orderDate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), order.UpdateOrderInput{
		ID:    ctx.Param("id"),
		Patch: patch,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(output.Order))
}

// Delete handles DELETE /orders/:id requests. Unknown ids succeed too.
func (c *OrderController) Delete(ctx *gin.Context) {
	err := c.deleteUseCase.Execute(ctx.Request.Context(), order.DeleteOrderInput{
		ID: ctx.Param("id"),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func toLineItems(reqs []dto.LineItemRequest) []entity.LineItem {
	items := make([]entity.LineItem, len(reqs))
	for i, item := range reqs {
		items[i] = entity.LineItem{
			ItemID:       item.ItemID,
			ItemName:     item.ItemName,
			CategoryID:   item.CategoryID,
			CategoryName: item.CategoryName,
			Quantity:     item.Quantity,
			UnitPrice:    decimal.NewFromFloat(item.UnitPrice),
			Subtotal:     decimal.NewFromFloat(item.Subtotal),
		}
	}
	return items
}
