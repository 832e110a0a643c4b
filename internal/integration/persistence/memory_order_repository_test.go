package persistence

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/orderdash/backend/internal/application/adapter"
	"github.com/orderdash/backend/internal/domain/entity"
	domainerror "github.com/orderdash/backend/internal/domain/error"
)

// seqIDGenerator issues predictable ids for tests.
type seqIDGenerator struct {
	n int
}

func (g *seqIDGenerator) NextID() string {
	g.n++
	return fmt.Sprintf("ORD-%d", g.n)
}

func newTestOrder(number string) *entity.Order {
	return &entity.Order{
		OrderNumber: number,
		Customer:    entity.Customer{Name: "Abebe Kebede", Phone: "+251911234567"},
		Items: []entity.LineItem{
			{ItemID: "itm-1", ItemName: "Espresso", Quantity: 2, Subtotal: decimal.NewFromInt(7)},
		},
		TotalAmount:   decimal.NewFromInt(7),
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
	}
}

func TestMemoryRepositoryCreateAssignsUniqueIDs(t *testing.T) {
	repo := NewMemoryOrderRepository(&seqIDGenerator{})
	ctx := context.Background()

	first, err := repo.Create(ctx, newTestOrder("SO-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := repo.Create(ctx, newTestOrder("SO-2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID == "" || first.ID == second.ID {
		t.Fatalf("expected distinct ids, got %q and %q", first.ID, second.ID)
	}
}

func TestMemoryRepositoryCreateIgnoresCallerSuppliedID(t *testing.T) {
	repo := NewMemoryOrderRepository(&seqIDGenerator{})

	o := newTestOrder("SO-1")
	o.ID = "ORD-client-picked"
	created, err := repo.Create(context.Background(), o)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.ID == "ORD-client-picked" {
		t.Fatal("expected the repository to assign the id")
	}
}

func TestMemoryRepositoryClonesOnTheWayInAndOut(t *testing.T) {
	repo := NewMemoryOrderRepository(&seqIDGenerator{})
	ctx := context.Background()

	input := newTestOrder("SO-1")
	created, err := repo.Create(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// mutating the input and the returned record must not change stored state
	input.Items[0].ItemName = "mutated input"
	created.Items[0].ItemName = "mutated output"
	created.OrderNumber = "mutated"

	stored, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Items[0].ItemName != "Espresso" || stored.OrderNumber != "SO-1" {
		t.Fatalf("stored state was aliased: %+v", stored)
	}
}

func TestMemoryRepositoryUpdateOverlaysOnlyPatchedFields(t *testing.T) {
	repo := NewMemoryOrderRepository(&seqIDGenerator{})
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestOrder("SO-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	paid := entity.PaymentStatusPaid
	updated, err := repo.Update(ctx, created.ID, adapter.OrderPatch{PaymentStatus: &paid})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.PaymentStatus != entity.PaymentStatusPaid {
		t.Errorf("expected payment status paid, got %s", updated.PaymentStatus)
	}
	if updated.OrderNumber != "SO-1" || updated.Status != entity.OrderStatusPending {
		t.Errorf("expected untouched fields preserved, got %+v", updated)
	}
	if updated.ID != created.ID {
		t.Errorf("id must never change, got %s", updated.ID)
	}
}

func TestMemoryRepositoryUpdateUnknownID(t *testing.T) {
	repo := NewMemoryOrderRepository(&seqIDGenerator{})

	_, err := repo.Update(context.Background(), "ORD-missing", adapter.OrderPatch{})

	var orderErr *domainerror.OrderError
	if !errors.As(err, &orderErr) || orderErr.Code != domainerror.ErrCodeOrderNotFound {
		t.Fatalf("expected order not found, got %v", err)
	}
	if !errors.Is(err, domainerror.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound in chain, got %v", err)
	}
}

func TestMemoryRepositoryDelete(t *testing.T) {
	repo := NewMemoryOrderRepository(&seqIDGenerator{})
	ctx := context.Background()

	first, _ := repo.Create(ctx, newTestOrder("SO-1"))
	second, _ := repo.Create(ctx, newTestOrder("SO-2"))
	third, _ := repo.Create(ctx, newTestOrder("SO-3"))

	t.Run("unknown id is a no-op", func(t *testing.T) {
		if err := repo.Delete(ctx, "ORD-missing"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("removes the record and keeps arrival order", func(t *testing.T) {
		if err := repo.Delete(ctx, second.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := repo.FindByID(ctx, second.ID); err == nil {
			t.Fatal("expected deleted order to be gone")
		}

		all, err := repo.FindAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(all) != 2 || all[0].ID != first.ID || all[1].ID != third.ID {
			t.Fatalf("expected [%s %s], got %+v", first.ID, third.ID, all)
		}
	})

	t.Run("deleted ids are not reused", func(t *testing.T) {
		fresh, err := repo.Create(ctx, newTestOrder("SO-4"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fresh.ID == second.ID {
			t.Fatalf("id %s was reused after deletion", fresh.ID)
		}
	})
}

func TestMemoryRepositoryFindAllReturnsArrivalOrder(t *testing.T) {
	repo := NewMemoryOrderRepository(&seqIDGenerator{})
	ctx := context.Background()

	for _, number := range []string{"SO-3", "SO-1", "SO-2"} {
		if _, err := repo.Create(ctx, newTestOrder(number)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	numbers := make([]string, len(all))
	for i, o := range all {
		numbers[i] = o.OrderNumber
	}
	if fmt.Sprintf("%v", numbers) != fmt.Sprintf("%v", []string{"SO-3", "SO-1", "SO-2"}) {
		t.Fatalf("expected arrival order, got %v", numbers)
	}
}

func TestApplyPatchCopiesItemSlices(t *testing.T) {
	target := newTestOrder("SO-1")
	items := []entity.LineItem{{ItemID: "itm-2", ItemName: "Latte", Quantity: 1}}

	applyPatch(target, adapter.OrderPatch{Items: &items})

	items[0].ItemName = "mutated"
	if target.Items[0].ItemName != "Latte" {
		t.Fatal("patched items must not alias the caller's slice")
	}
}
