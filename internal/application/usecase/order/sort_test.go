package order

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/orderdash/backend/internal/domain/entity"
	domainerror "github.com/orderdash/backend/internal/domain/error"
)

func TestSortOrdersComparesAmountsNumerically(t *testing.T) {
	// lexicographic comparison would put "10" before "9"
	orders := []*entity.Order{
		testOrder("1", func(o *entity.Order) { o.TotalAmount = decimal.NewFromInt(10) }),
		testOrder("2", func(o *entity.Order) { o.TotalAmount = decimal.NewFromInt(9) }),
		testOrder("3", func(o *entity.Order) { o.TotalAmount = decimal.NewFromInt(100) }),
	}

	result, err := SortOrders(orders, SortByTotalAmount, SortAsc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertIDs(t, result, "2", "1", "3")
}

func TestSortOrdersDescReversesComparison(t *testing.T) {
	orders := []*entity.Order{
		testOrder("1", func(o *entity.Order) { o.OrderNumber = "SO-A" }),
		testOrder("2", func(o *entity.Order) { o.OrderNumber = "SO-C" }),
		testOrder("3", func(o *entity.Order) { o.OrderNumber = "SO-B" }),
	}

	result, err := SortOrders(orders, SortByOrderNumber, SortDesc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertIDs(t, result, "2", "3", "1")
}

func TestSortOrdersIsStable(t *testing.T) {
	orders := []*entity.Order{
		testOrder("1", func(o *entity.Order) { o.TotalAmount = decimal.NewFromInt(5) }),
		testOrder("2", func(o *entity.Order) { o.TotalAmount = decimal.NewFromInt(5) }),
		testOrder("3", func(o *entity.Order) { o.TotalAmount = decimal.NewFromInt(3) }),
		testOrder("4", func(o *entity.Order) { o.TotalAmount = decimal.NewFromInt(5) }),
	}

	result, err := SortOrders(orders, SortByTotalAmount, SortAsc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// equal keys keep their arrival order
	assertIDs(t, result, "3", "1", "2", "4")
}

func TestSortOrdersDoesNotMutateInput(t *testing.T) {
	orders := []*entity.Order{
		testOrder("1", func(o *entity.Order) { o.TotalAmount = decimal.NewFromInt(9) }),
		testOrder("2", func(o *entity.Order) { o.TotalAmount = decimal.NewFromInt(1) }),
	}

	if _, err := SortOrders(orders, SortByTotalAmount, SortAsc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertIDs(t, orders, "1", "2")
}

func TestSortOrdersEmptyDirectionKeepsArrivalOrder(t *testing.T) {
	orders := []*entity.Order{
		testOrder("2", nil),
		testOrder("3", nil),
		testOrder("1", nil),
	}

	result, err := SortOrders(orders, SortByOrderID, SortNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertIDs(t, result, "2", "3", "1")
}

func TestSortOrdersByItemCount(t *testing.T) {
	orders := []*entity.Order{
		testOrder("1", func(o *entity.Order) {
			o.Items = append(o.Items, o.Items[0], o.Items[0])
		}),
		testOrder("2", func(o *entity.Order) { o.Items = nil }),
		testOrder("3", nil),
	}

	result, err := SortOrders(orders, SortByItemCount, SortAsc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertIDs(t, result, "2", "3", "1")
}

func TestSortOrdersByOrderDate(t *testing.T) {
	orders := []*entity.Order{
		testOrder("1", func(o *entity.Order) { o.OrderDate = date(2025, time.April, 20) }),
		testOrder("2", func(o *entity.Order) { o.OrderDate = date(2024, time.December, 31) }),
		testOrder("3", func(o *entity.Order) { o.OrderDate = date(2025, time.January, 1) }),
	}

	result, err := SortOrders(orders, SortByOrderDate, SortAsc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertIDs(t, result, "2", "3", "1")
}

func TestSortOrdersUnknownColumn(t *testing.T) {
	_, err := SortOrders([]*entity.Order{testOrder("1", nil)}, SortColumn("bogus"), SortAsc)
	assertQueryError(t, err, domainerror.ErrCodeUnknownSortColumn)
}

func TestSortOrdersUnknownColumnWithoutDirection(t *testing.T) {
	_, err := SortOrders([]*entity.Order{testOrder("1", nil)}, SortColumn("bogus"), SortNone)
	assertQueryError(t, err, domainerror.ErrCodeUnknownSortColumn)
}

func TestSortOrdersNoColumnNoDirectionPassesThrough(t *testing.T) {
	orders := []*entity.Order{testOrder("2", nil), testOrder("1", nil)}

	result, err := SortOrders(orders, "", SortNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertIDs(t, result, "2", "1")
}

func TestSortOrdersInvalidDirection(t *testing.T) {
	_, err := SortOrders([]*entity.Order{testOrder("1", nil)}, SortByOrderID, SortDirection("sideways"))
	assertQueryError(t, err, domainerror.ErrCodeInvalidSortDirection)
}

func TestSortStateToggleCyclesOnSameColumn(t *testing.T) {
	state := SortState{}

	state = state.Toggle(SortByTotalAmount)
	if state.Column != SortByTotalAmount || state.Direction != SortAsc {
		t.Fatalf("expected asc on total_amount, got %+v", state)
	}

	state = state.Toggle(SortByTotalAmount)
	if state.Column != SortByTotalAmount || state.Direction != SortDesc {
		t.Fatalf("expected desc on total_amount, got %+v", state)
	}

	state = state.Toggle(SortByTotalAmount)
	if state.Column != "" || state.Direction != SortNone {
		t.Fatalf("expected cleared state, got %+v", state)
	}

	state = state.Toggle(SortByTotalAmount)
	if state.Column != SortByTotalAmount || state.Direction != SortAsc {
		t.Fatalf("expected cycle back to asc, got %+v", state)
	}
}

func TestSortStateToggleResetsOnColumnChange(t *testing.T) {
	state := SortState{Column: SortByTotalAmount, Direction: SortDesc}

	state = state.Toggle(SortByCustomerName)

	if state.Column != SortByCustomerName || state.Direction != SortAsc {
		t.Fatalf("expected asc on customer_name, got %+v", state)
	}
}
