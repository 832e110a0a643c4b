package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orderdash/backend/internal/domain/entity"
)

func newQueryContext(t *testing.T, rawQuery string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/orders?"+rawQuery, nil)
	return ctx, recorder
}

func TestParseFilterCriteriaBuildsTypedSets(t *testing.T) {
	ctx, _ := newQueryContext(t,
		"status=completed,pending&payment_status=paid&payment_method=card,%20cash&category_ids=cat-drinks&search=espresso")

	criteria, ok := parseFilterCriteria(ctx)
	if !ok {
		t.Fatal("expected criteria to parse")
	}

	wantStatuses := []entity.OrderStatus{entity.OrderStatusCompleted, entity.OrderStatusPending}
	if len(criteria.Statuses) != len(wantStatuses) {
		t.Fatalf("expected %d statuses, got %+v", len(wantStatuses), criteria.Statuses)
	}
	for i, want := range wantStatuses {
		if criteria.Statuses[i] != want {
			t.Errorf("status %d: expected %s, got %s", i, want, criteria.Statuses[i])
		}
	}

	if len(criteria.PaymentStatuses) != 1 || criteria.PaymentStatuses[0] != entity.PaymentStatusPaid {
		t.Errorf("expected paid payment status, got %+v", criteria.PaymentStatuses)
	}
	if len(criteria.PaymentMethods) != 2 || criteria.PaymentMethods[0] != "card" || criteria.PaymentMethods[1] != "cash" {
		t.Errorf("expected trimmed payment methods, got %+v", criteria.PaymentMethods)
	}
	if len(criteria.CategoryIDs) != 1 || criteria.CategoryIDs[0] != "cat-drinks" {
		t.Errorf("expected category ids, got %+v", criteria.CategoryIDs)
	}
	if criteria.Search != "espresso" {
		t.Errorf("expected search term, got %q", criteria.Search)
	}
}

func TestParseFilterCriteriaWidensEndDateToEndOfDay(t *testing.T) {
	ctx, _ := newQueryContext(t, "start_date=2025-04-01&end_date=2025-04-30")

	criteria, ok := parseFilterCriteria(ctx)
	if !ok {
		t.Fatal("expected criteria to parse")
	}

	wantStart := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	if criteria.StartDate == nil || !criteria.StartDate.Equal(wantStart) {
		t.Fatalf("expected start %v, got %v", wantStart, criteria.StartDate)
	}

	wantEnd := time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC).Add(24*time.Hour - time.Nanosecond)
	if criteria.EndDate == nil || !criteria.EndDate.Equal(wantEnd) {
		t.Fatalf("expected end %v, got %v", wantEnd, criteria.EndDate)
	}
}

func TestParseFilterCriteriaRejectsMalformedDates(t *testing.T) {
	ctx, recorder := newQueryContext(t, "start_date=not-a-date")

	_, ok := parseFilterCriteria(ctx)
	if ok {
		t.Fatal("expected parsing to fail")
	}
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "QRY-010005") {
		t.Fatalf("expected date format code in body, got %s", recorder.Body.String())
	}
}
