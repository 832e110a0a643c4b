package report

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/orderdash/backend/internal/application/adapter"
	"github.com/orderdash/backend/internal/application/usecase/analytics"
	"github.com/orderdash/backend/internal/domain/entity"
	domainerror "github.com/orderdash/backend/internal/domain/error"
)

type stubOrderRepository struct {
	orders []*entity.Order
}

func (s *stubOrderRepository) Create(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	return order, nil
}

func (s *stubOrderRepository) Update(ctx context.Context, id string, patch adapter.OrderPatch) (*entity.Order, error) {
	return nil, domainerror.NewOrderError(domainerror.ErrCodeOrderNotFound, "order not found", domainerror.ErrOrderNotFound)
}

func (s *stubOrderRepository) Delete(ctx context.Context, id string) error { return nil }

func (s *stubOrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	return nil, domainerror.NewOrderError(domainerror.ErrCodeOrderNotFound, "order not found", domainerror.ErrOrderNotFound)
}

func (s *stubOrderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	return s.orders, nil
}

type stubExpenseRepository struct{}

func (s *stubExpenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return nil
}

func (s *stubExpenseRepository) FindAll(ctx context.Context) ([]*entity.Expense, error) {
	return nil, nil
}

type stubSender struct {
	configured bool
	sendErr    error
	sent       []adapter.SendEmailInput
}

func (s *stubSender) IsConfigured() bool { return s.configured }

func (s *stubSender) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if s.sendErr != nil {
		return nil, s.sendErr
	}
	s.sent = append(s.sent, input)
	return &adapter.SendEmailResult{ProviderID: "msg-123"}, nil
}

func newReportUseCase(sender adapter.ReportSender) *SendSalesReportUseCase {
	now := time.Now().UTC()
	orderRepo := &stubOrderRepository{orders: []*entity.Order{
		{
			OrderNumber: "SO-1001",
			Items: []entity.LineItem{
				{ItemID: "itm-1", ItemName: "Espresso", CategoryID: "cat-drinks", CategoryName: "Drinks", Quantity: 2, Subtotal: decimal.NewFromInt(7)},
			},
			TotalAmount: decimal.NewFromInt(7),
			OrderDate:   now,
		},
	}}
	expenseRepo := &stubExpenseRepository{}
	return NewSendSalesReportUseCase(
		analytics.NewGetSalesReportUseCase(orderRepo, expenseRepo),
		analytics.NewGetOverviewUseCase(orderRepo, expenseRepo),
		sender,
	)
}

func TestSendSalesReportDeliversRenderedReport(t *testing.T) {
	sender := &stubSender{configured: true}
	uc := newReportUseCase(sender)

	output, err := uc.Execute(context.Background(), SendSalesReportInput{
		Recipient: "owner@orderdash.test",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.ProviderID != "msg-123" {
		t.Errorf("expected provider id from sender, got %s", output.ProviderID)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 sent mail, got %d", len(sender.sent))
	}
	mail := sender.sent[0]
	if mail.To != "owner@orderdash.test" {
		t.Errorf("unexpected recipient %s", mail.To)
	}
	if !strings.Contains(mail.HTML, "Espresso") || !strings.Contains(mail.HTML, "Drinks") {
		t.Errorf("expected rollup rows in HTML body: %s", mail.HTML)
	}
	if !strings.Contains(mail.Text, "Espresso") {
		t.Errorf("expected rollup rows in text body: %s", mail.Text)
	}
}

func TestSendSalesReportWhenNotConfigured(t *testing.T) {
	uc := newReportUseCase(&stubSender{configured: false})

	_, err := uc.Execute(context.Background(), SendSalesReportInput{Recipient: "owner@orderdash.test"})

	assertReportError(t, err, domainerror.ErrCodeEmailNotConfigured)
}

func TestSendSalesReportWithoutRecipient(t *testing.T) {
	uc := newReportUseCase(&stubSender{configured: true})

	_, err := uc.Execute(context.Background(), SendSalesReportInput{})

	assertReportError(t, err, domainerror.ErrCodeEmailNotConfigured)
}

func TestSendSalesReportWrapsSendFailures(t *testing.T) {
	sendErr := errors.New("provider unavailable")
	uc := newReportUseCase(&stubSender{configured: true, sendErr: sendErr})

	_, err := uc.Execute(context.Background(), SendSalesReportInput{Recipient: "owner@orderdash.test"})

	assertReportError(t, err, domainerror.ErrCodeReportSendFailed)
	if !errors.Is(err, sendErr) {
		t.Fatalf("expected provider error in chain, got %v", err)
	}
}

func assertReportError(t *testing.T, err error, code domainerror.ReportErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	var reportErr *domainerror.ReportError
	if !errors.As(err, &reportErr) {
		t.Fatalf("expected a ReportError, got %T: %v", err, err)
	}
	if reportErr.Code != code {
		t.Fatalf("expected code %s, got %s", code, reportErr.Code)
	}
}
