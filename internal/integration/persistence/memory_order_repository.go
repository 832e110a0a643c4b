package persistence

import (
	"context"
	"sync"
	"time"

	"github.com/orderdash/backend/internal/application/adapter"
	"github.com/orderdash/backend/internal/domain/entity"
	domainerror "github.com/orderdash/backend/internal/domain/error"
)

// memoryOrderRepository is an in-memory adapter.OrderRepository. It backs
// the server when no database is configured and the unit test suites.
// Records are cloned on the way in and out so callers can never alias
// stored state.
type memoryOrderRepository struct {
	mu     sync.RWMutex
	orders []*entity.Order
	index  map[string]int
	idGen  adapter.IDGenerator
}

// NewMemoryOrderRepository creates a new in-memory order repository.
func NewMemoryOrderRepository(idGen adapter.IDGenerator) adapter.OrderRepository {
	return &memoryOrderRepository{
		index: make(map[string]int),
		idGen: idGen,
	}
}

// Create assigns a fresh id and stores a clone of the order.
func (r *memoryOrderRepository) Create(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := order.Clone()
	stored.ID = r.idGen.NextID()

	r.index[stored.ID] = len(r.orders)
	r.orders = append(r.orders, stored)

	return stored.Clone(), nil
}

// Update overlays the patch onto the stored order.
func (r *memoryOrderRepository) Update(ctx context.Context, id string, patch adapter.OrderPatch) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, domainerror.NewOrderError(
			domainerror.ErrCodeOrderNotFound,
			"order not found",
			domainerror.ErrOrderNotFound,
		)
	}

	updated := r.orders[pos].Clone()
	applyPatch(updated, patch)
	updated.UpdatedAt = time.Now().UTC()
	r.orders[pos] = updated

	return updated.Clone(), nil
}

// Delete removes the order with the given id. Unknown ids are a no-op.
// The id is never handed out again; identifiers come from the generator,
// not from slot reuse.
func (r *memoryOrderRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return nil
	}

	r.orders = append(r.orders[:pos], r.orders[pos+1:]...)
	delete(r.index, id)
	for i := pos; i < len(r.orders); i++ {
		r.index[r.orders[i].ID] = i
	}

	return nil
}

// FindByID returns a clone of the order with the given id.
func (r *memoryOrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, domainerror.NewOrderError(
			domainerror.ErrCodeOrderNotFound,
			"order not found",
			domainerror.ErrOrderNotFound,
		)
	}

	return r.orders[pos].Clone(), nil
}

// FindAll returns clones of every order in arrival order.
func (r *memoryOrderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*entity.Order, len(r.orders))
	for i, o := range r.orders {
		orders[i] = o.Clone()
	}
	return orders, nil
}
