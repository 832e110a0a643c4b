package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orderdash/backend/internal/application/usecase/insight"
	"github.com/orderdash/backend/internal/application/usecase/report"
	"github.com/orderdash/backend/internal/integration/entrypoint/dto"
)

// ReportController handles report delivery and insight endpoints.
type ReportController struct {
	sendReportUseCase *report.SendSalesReportUseCase
	insightUseCase    *insight.GetSalesInsightUseCase
	defaultRecipient  string
}

// NewReportController creates a new report controller instance.
func NewReportController(
	sendReportUseCase *report.SendSalesReportUseCase,
	insightUseCase *insight.GetSalesInsightUseCase,
	defaultRecipient string,
) *ReportController {
	return &ReportController{
		sendReportUseCase: sendReportUseCase,
		insightUseCase:    insightUseCase,
		defaultRecipient:  defaultRecipient,
	}
}

// SendReport handles POST /reports/email requests.
func (c *ReportController) SendReport(ctx *gin.Context) {
	// The body is optional; an empty POST uses the configured recipient.
	var req dto.SendReportRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body: " + err.Error(),
			})
			return
		}
	}

	recipient := req.Recipient
	if recipient == "" {
		recipient = c.defaultRecipient
	}

	criteria, ok := parseFilterCriteria(ctx)
	if !ok {
		return
	}

	output, err := c.sendReportUseCase.Execute(ctx.Request.Context(), report.SendSalesReportInput{
		Recipient: recipient,
		Criteria:  report.SalesReportCriteria{Criteria: criteria},
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SendReportResponse{
		Message:    "Report sent",
		ProviderID: output.ProviderID,
	})
}

// SalesInsight handles GET /insights/sales requests.
func (c *ReportController) SalesInsight(ctx *gin.Context) {
	output, err := c.insightUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InsightResponse{
		Insight:     output.Insight,
		GeneratedAt: output.GeneratedAt,
	})
}
