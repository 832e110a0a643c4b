package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCustomerKeyDiscrimination(t *testing.T) {
	tests := []struct {
		name     string
		customer Customer
		wantKind CustomerKeyKind
		wantStr  string
	}{
		{"phone wins over email", Customer{Phone: "+251911234567", Email: "a@example.com"}, CustomerKeyPhone, "+251911234567"},
		{"email fallback", Customer{Email: "a@example.com"}, CustomerKeyEmail, "a@example.com"},
		{"no contact is unknown", Customer{Name: "Walk-in"}, CustomerKeyUnknown, "unknown"},
		{"empty customer is unknown", Customer{}, CustomerKeyUnknown, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := tt.customer.Key()
			if key.Kind != tt.wantKind {
				t.Errorf("expected kind %s, got %s", tt.wantKind, key.Kind)
			}
			if key.String() != tt.wantStr {
				t.Errorf("expected display %q, got %q", tt.wantStr, key.String())
			}
		})
	}
}

func TestCustomerKeyKindsDoNotCollide(t *testing.T) {
	phone := Customer{Phone: "a@example.com"}.Key()
	email := Customer{Email: "a@example.com"}.Key()

	if phone == email {
		t.Fatal("a phone and an email with the same text must map to different keys")
	}
}

func TestOrderCloneIsDeep(t *testing.T) {
	original := &Order{
		ID:          "ORD-1",
		OrderNumber: "SO-1001",
		Items: []LineItem{
			{ItemID: "itm-1", ItemName: "Espresso", Quantity: 2, Subtotal: decimal.NewFromInt(7)},
		},
		TotalAmount: decimal.NewFromInt(7),
	}

	cloned := original.Clone()
	cloned.OrderNumber = "changed"
	cloned.Items[0].ItemName = "changed"

	if original.OrderNumber != "SO-1001" {
		t.Error("clone aliased scalar fields")
	}
	if original.Items[0].ItemName != "Espresso" {
		t.Error("clone aliased the items slice")
	}
}
