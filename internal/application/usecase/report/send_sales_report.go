// Package report contains the report delivery use case.
package report

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/orderdash/backend/internal/application/adapter"
	"github.com/orderdash/backend/internal/application/usecase/analytics"
	domainerror "github.com/orderdash/backend/internal/domain/error"
)

// SendSalesReportInput represents the input for emailing a sales report.
type SendSalesReportInput struct {
	Recipient string
	Criteria  SalesReportCriteria
}

// SalesReportCriteria is re-exported here to keep the controller decoupled
// from the analytics package types.
type SalesReportCriteria = analytics.GetSalesReportInput

// SendSalesReportOutput represents the output of emailing a sales report.
type SendSalesReportOutput struct {
	ProviderID string
}

// SendSalesReportUseCase renders the computed rollups into an email and
// hands it to the report sender. The use case formats already-computed rows
// only; how the provider serializes the mail is its own concern.
type SendSalesReportUseCase struct {
	salesReport *analytics.GetSalesReportUseCase
	overview    *analytics.GetOverviewUseCase
	sender      adapter.ReportSender
}

// NewSendSalesReportUseCase creates a new SendSalesReportUseCase instance.
func NewSendSalesReportUseCase(
	salesReport *analytics.GetSalesReportUseCase,
	overview *analytics.GetOverviewUseCase,
	sender adapter.ReportSender,
) *SendSalesReportUseCase {
	return &SendSalesReportUseCase{
		salesReport: salesReport,
		overview:    overview,
		sender:      sender,
	}
}

// Execute computes the report and sends it.
func (uc *SendSalesReportUseCase) Execute(ctx context.Context, input SendSalesReportInput) (*SendSalesReportOutput, error) {
	if !uc.sender.IsConfigured() || input.Recipient == "" {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeEmailNotConfigured,
			"report email is not configured",
			domainerror.ErrEmailNotConfigured,
		)
	}

	reportOut, err := uc.salesReport.Execute(ctx, input.Criteria)
	if err != nil {
		return nil, err
	}
	overviewOut, err := uc.overview.Execute(ctx)
	if err != nil {
		return nil, err
	}

	result, err := uc.sender.Send(ctx, adapter.SendEmailInput{
		To:      input.Recipient,
		Subject: "OrderDash sales report",
		HTML:    renderHTML(overviewOut, reportOut),
		Text:    renderText(overviewOut, reportOut),
	})
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportSendFailed,
			"failed to send report email",
			err,
		)
	}

	return &SendSalesReportOutput{ProviderID: result.ProviderID}, nil
}

func renderHTML(overview *analytics.GetOverviewOutput, report *analytics.GetSalesReportOutput) string {
	var sb strings.Builder

	sb.WriteString("<h2>Sales report</h2>")
	sb.WriteString("<ul>")
	fmt.Fprintf(&sb, "<li>Revenue this month: %s (%s%% vs last month)</li>",
		overview.TotalRevenue.StringFixed(2), overview.RevenueGrowthPct.StringFixed(1))
	fmt.Fprintf(&sb, "<li>Orders this month: %d (%s%% vs last month)</li>",
		overview.TotalOrders, overview.OrdersGrowthPct.StringFixed(1))
	fmt.Fprintf(&sb, "<li>Expenses this month: %s (%s%% vs last month)</li>",
		overview.TotalExpenses.StringFixed(2), overview.ExpenseGrowthPct.StringFixed(1))
	sb.WriteString("</ul>")

	sb.WriteString("<h3>Top selling items</h3><ol>")
	for _, item := range report.TopItems {
		fmt.Fprintf(&sb, "<li>%s - %s</li>",
			html.EscapeString(item.ItemName), item.TotalRevenue.StringFixed(2))
	}
	sb.WriteString("</ol>")

	sb.WriteString("<h3>Revenue by category</h3><ul>")
	for _, cat := range report.Categories {
		fmt.Fprintf(&sb, "<li>%s - %s</li>",
			html.EscapeString(cat.CategoryName), cat.TotalRevenue.StringFixed(2))
	}
	sb.WriteString("</ul>")

	return sb.String()
}

func renderText(overview *analytics.GetOverviewOutput, report *analytics.GetSalesReportOutput) string {
	var sb strings.Builder

	sb.WriteString("Sales report\n\n")
	fmt.Fprintf(&sb, "Revenue this month: %s (%s%% vs last month)\n",
		overview.TotalRevenue.StringFixed(2), overview.RevenueGrowthPct.StringFixed(1))
	fmt.Fprintf(&sb, "Orders this month: %d (%s%% vs last month)\n",
		overview.TotalOrders, overview.OrdersGrowthPct.StringFixed(1))
	fmt.Fprintf(&sb, "Expenses this month: %s (%s%% vs last month)\n\n",
		overview.TotalExpenses.StringFixed(2), overview.ExpenseGrowthPct.StringFixed(1))

	sb.WriteString("Top selling items:\n")
	for i, item := range report.TopItems {
		fmt.Fprintf(&sb, "%d. %s - %s\n", i+1, item.ItemName, item.TotalRevenue.StringFixed(2))
	}

	return sb.String()
}
