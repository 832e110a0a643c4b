// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orderdash/backend/internal/application/usecase/order"
	"github.com/orderdash/backend/internal/domain/entity"
	domainerror "github.com/orderdash/backend/internal/domain/error"
	"github.com/orderdash/backend/internal/integration/entrypoint/dto"
)

const queryDateLayout = "2006-01-02"

// parseFilterCriteria reads the shared filter query parameters. The same
// parameter set drives the order table and every analytics endpoint.
func parseFilterCriteria(ctx *gin.Context) (order.FilterCriteria, bool) {
	criteria := order.FilterCriteria{
		Search: ctx.Query("search"),
	}

	criteria.Statuses = splitStatusParam(ctx.Query("status"))
	criteria.PaymentStatuses = splitPaymentStatusParam(ctx.Query("payment_status"))
	criteria.PaymentMethods = splitParam(ctx.Query("payment_method"))
	criteria.CategoryIDs = splitParam(ctx.Query("category_ids"))

	if startStr := ctx.Query("start_date"); startStr != "" {
		start, err := time.Parse(queryDateLayout, startStr)
		if err != nil {
			respondInvalidDate(ctx, "start_date")
			return criteria, false
		}
		criteria.StartDate = &start
	}
	if endStr := ctx.Query("end_date"); endStr != "" {
		end, err := time.Parse(queryDateLayout, endStr)
		if err != nil {
			respondInvalidDate(ctx, "end_date")
			return criteria, false
		}
		// Inclusive upper bound: the whole end day is in range.
		end = end.Add(24*time.Hour - time.Nanosecond)
		criteria.EndDate = &end
	}

	return criteria, true
}

// splitStatusParam splits a comma separated status value into typed parts.
func splitStatusParam(value string) []entity.OrderStatus {
	parts := splitParam(value)
	if parts == nil {
		return nil
	}
	statuses := make([]entity.OrderStatus, len(parts))
	for i, p := range parts {
		statuses[i] = entity.OrderStatus(p)
	}
	return statuses
}

// splitPaymentStatusParam splits a comma separated payment status value into
// typed parts.
func splitPaymentStatusParam(value string) []entity.PaymentStatus {
	parts := splitParam(value)
	if parts == nil {
		return nil
	}
	statuses := make([]entity.PaymentStatus, len(parts))
	for i, p := range parts {
		statuses[i] = entity.PaymentStatus(p)
	}
	return statuses
}

// splitParam splits a comma separated query value into trimmed parts.
func splitParam(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// parsePagination reads page and page_size. Values the use case considers
// out of range are passed through; it applies its own clamping.
func parsePagination(ctx *gin.Context) (page, pageSize int) {
	if pageStr := ctx.Query("page"); pageStr != "" {
		if v, err := strconv.Atoi(pageStr); err == nil {
			page = v
		}
	}
	if sizeStr := ctx.Query("page_size"); sizeStr != "" {
		if v, err := strconv.Atoi(sizeStr); err == nil {
			pageSize = v
		}
	}
	return page, pageSize
}

func respondInvalidDate(ctx *gin.Context, field string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid " + field + " format. Use YYYY-MM-DD",
		Code:  string(domainerror.ErrCodeInvalidDateFormat),
	})
}

// handleDomainError maps domain errors to HTTP responses.
func handleDomainError(ctx *gin.Context, err error) {
	var queryErr *domainerror.QueryError
	if errors.As(err, &queryErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: queryErr.Message,
			Code:  string(queryErr.Code),
		})
		return
	}

	var orderErr *domainerror.OrderError
	if errors.As(err, &orderErr) {
		status := http.StatusBadRequest
		if errors.Is(err, domainerror.ErrOrderNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: orderErr.Message,
			Code:  string(orderErr.Code),
		})
		return
	}

	var expenseErr *domainerror.ExpenseError
	if errors.As(err, &expenseErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: expenseErr.Message,
			Code:  string(expenseErr.Code),
		})
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		status := http.StatusUnauthorized
		if errors.Is(err, domainerror.ErrRateLimited) {
			status = http.StatusTooManyRequests
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		status := http.StatusBadGateway
		if errors.Is(err, domainerror.ErrEmailNotConfigured) || errors.Is(err, domainerror.ErrInsightNotConfigured) {
			status = http.StatusServiceUnavailable
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}
