package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/orderdash/backend/internal/application/usecase/analytics"
	"github.com/orderdash/backend/internal/integration/entrypoint/dto"
)

// AnalyticsController handles analytics endpoints. Every endpoint accepts
// the same filter parameters as the order listing, so the report always
// describes the rows the user is looking at.
type AnalyticsController struct {
	salesReportUseCase *analytics.GetSalesReportUseCase
	overviewUseCase    *analytics.GetOverviewUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	salesReportUseCase *analytics.GetSalesReportUseCase,
	overviewUseCase *analytics.GetOverviewUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		salesReportUseCase: salesReportUseCase,
		overviewUseCase:    overviewUseCase,
	}
}

// Categories handles GET /analytics/categories requests.
func (c *AnalyticsController) Categories(ctx *gin.Context) {
	output, ok := c.report(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"categories": dto.ToCategoryAnalyticsResponses(output.Categories)})
}

// TopItems handles GET /analytics/top-items requests.
func (c *AnalyticsController) TopItems(ctx *gin.Context) {
	output, ok := c.report(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"top_items": dto.ToItemSalesResponses(output.TopItems)})
}

// Customers handles GET /analytics/customers requests.
func (c *AnalyticsController) Customers(ctx *gin.Context) {
	output, ok := c.report(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"customers": dto.ToCustomerAnalyticsResponses(output.Customers)})
}

// Trend handles GET /analytics/trend requests.
func (c *AnalyticsController) Trend(ctx *gin.Context) {
	output, ok := c.report(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"trend": dto.ToTrendBucketResponses(output.Trend)})
}

// Report handles GET /analytics/report requests, returning all rollups in
// one response.
func (c *AnalyticsController) Report(ctx *gin.Context) {
	output, ok := c.report(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSalesReportResponse(output))
}

// Overview handles GET /analytics/overview requests.
func (c *AnalyticsController) Overview(ctx *gin.Context) {
	output, err := c.overviewUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}

// report runs the sales report use case for the request's criteria. A false
// return means the response has already been written.
func (c *AnalyticsController) report(ctx *gin.Context) (*analytics.GetSalesReportOutput, bool) {
	criteria, ok := parseFilterCriteria(ctx)
	if !ok {
		return nil, false
	}

	input := analytics.GetSalesReportInput{Criteria: criteria}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.TopLimit = limit
		}
	}

	output, err := c.salesReportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return nil, false
	}

	return output, true
}
