package analytics

import (
	"testing"
	"time"

	"github.com/orderdash/backend/internal/domain/entity"
)

func customerOrder(customer entity.Customer, total string, orderDate time.Time) *entity.Order {
	o := orderWith(total)
	o.Customer = customer
	o.OrderDate = orderDate
	return o
}

func TestByCustomerGroupsByPhone(t *testing.T) {
	abebe := entity.Customer{Name: "Abebe Kebede", Phone: "+251911234567"}
	orders := []*entity.Order{
		customerOrder(abebe, "10", date(2025, time.April, 1)),
		customerOrder(abebe, "30", date(2025, time.April, 5)),
	}

	result := ByCustomer(orders)

	if len(result) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(result))
	}
	row := result[0]
	if row.Key != "+251911234567" {
		t.Errorf("expected phone key, got %s", row.Key)
	}
	if row.TotalOrders != 2 {
		t.Errorf("expected 2 orders, got %d", row.TotalOrders)
	}
	if !row.TotalAmount.Equal(dec("40")) {
		t.Errorf("expected total 40, got %s", row.TotalAmount)
	}
	if !row.AverageOrderValue.Equal(dec("20")) {
		t.Errorf("expected average 20, got %s", row.AverageOrderValue)
	}
}

func TestByCustomerPrefersPhoneOverEmail(t *testing.T) {
	orders := []*entity.Order{
		customerOrder(entity.Customer{Name: "Alice", Phone: "+111", Email: "alice@example.com"}, "10", date(2025, time.April, 1)),
		customerOrder(entity.Customer{Name: "Alice", Email: "alice@example.com"}, "20", date(2025, time.April, 2)),
	}

	result := ByCustomer(orders)

	// same person by email, but the first order carries a phone, so the two
	// orders land under different keys
	if len(result) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(result))
	}
	if result[0].Key != "+111" || result[1].Key != "alice@example.com" {
		t.Fatalf("expected phone then email key, got %+v", result)
	}
}

func TestByCustomerUnknownBucketAggregates(t *testing.T) {
	orders := []*entity.Order{
		customerOrder(entity.Customer{Name: "Walk-in"}, "5", date(2025, time.April, 1)),
		customerOrder(entity.Customer{}, "7", date(2025, time.April, 2)),
		customerOrder(entity.Customer{Name: "Abebe", Phone: "+251911234567"}, "10", date(2025, time.April, 3)),
	}

	result := ByCustomer(orders)

	if len(result) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(result))
	}
	unknown := result[0]
	if unknown.Key != "unknown" {
		t.Fatalf("expected unknown bucket first, got %s", unknown.Key)
	}
	if unknown.TotalOrders != 2 || !unknown.TotalAmount.Equal(dec("12")) {
		t.Fatalf("expected 2 orders totaling 12, got %+v", unknown)
	}
}

func TestByCustomerLastOrderDateAcrossYearBoundary(t *testing.T) {
	abebe := entity.Customer{Name: "Abebe Kebede", Phone: "+251911234567"}
	orders := []*entity.Order{
		customerOrder(abebe, "10", date(2025, time.January, 1)),
		customerOrder(abebe, "10", date(2024, time.December, 31)),
	}

	result := ByCustomer(orders)

	want := date(2025, time.January, 1)
	if !result[0].LastOrderDate.Equal(want) {
		t.Fatalf("expected last order date %s, got %s", want, result[0].LastOrderDate)
	}
}
