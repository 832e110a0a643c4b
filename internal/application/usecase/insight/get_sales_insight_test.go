package insight

import (
	"context"
	"errors"
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

type stubInsightService struct {
	available bool
	summary   string
	err       error
	request   *adapter.InsightRequest
}

func (s *stubInsightService) IsAvailable() bool { return s.available }

func (s *stubInsightService) Summarize(ctx context.Context, request *adapter.InsightRequest) (string, error) {
	s.request = request
	if s.err != nil {
		return "", s.err
	}
	return s.summary, nil
}

func newInsightUseCase(service adapter.InsightService) *GetSalesInsightUseCase {
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
	return NewGetSalesInsightUseCase(
		analytics.NewGetSalesReportUseCase(orderRepo, expenseRepo),
		analytics.NewGetOverviewUseCase(orderRepo, expenseRepo),
		service,
	)
}

func TestGetSalesInsightSendsDerivedMetricsOnly(t *testing.T) {
	service := &stubInsightService{available: true, summary: "Sales look healthy."}
	uc := newInsightUseCase(service)

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Insight != "Sales look healthy." {
		t.Errorf("unexpected insight %q", output.Insight)
	}
	if output.GeneratedAt.IsZero() {
		t.Error("expected a generation timestamp")
	}
	if service.request == nil {
		t.Fatal("expected the service to receive a request")
	}
	if service.request.TotalRevenue != "7.00" {
		t.Errorf("expected formatted revenue, got %s", service.request.TotalRevenue)
	}
	if len(service.request.TopItems) != 1 || service.request.TopItems[0].Name != "Espresso" {
		t.Errorf("expected top items digest, got %+v", service.request.TopItems)
	}
	if len(service.request.TopCategories) != 1 || service.request.TopCategories[0].Name != "Drinks" {
		t.Errorf("expected top categories digest, got %+v", service.request.TopCategories)
	}
}

func TestGetSalesInsightWhenNotConfigured(t *testing.T) {
	uc := newInsightUseCase(&stubInsightService{available: false})

	_, err := uc.Execute(context.Background())

	var reportErr *domainerror.ReportError
	if !errors.As(err, &reportErr) || reportErr.Code != domainerror.ErrCodeInsightNotConfigured {
		t.Fatalf("expected insight not configured, got %v", err)
	}
}

func TestGetSalesInsightWrapsGenerationFailures(t *testing.T) {
	genErr := errors.New("model overloaded")
	uc := newInsightUseCase(&stubInsightService{available: true, err: genErr})

	_, err := uc.Execute(context.Background())

	var reportErr *domainerror.ReportError
	if !errors.As(err, &reportErr) || reportErr.Code != domainerror.ErrCodeInsightGenerationFailed {
		t.Fatalf("expected generation failure, got %v", err)
	}
	if !errors.Is(err, genErr) {
		t.Fatalf("expected service error in chain, got %v", err)
	}
}
