package adapters

import (
	"fmt"
	"sync"
	"time"

	"github.com/orderdash/backend/internal/application/adapter"
)

// orderIDGenerator issues "ORD-" prefixed identifiers built from a millisecond
// timestamp plus a per-millisecond sequence. The sequence disambiguates calls
// that land inside one clock tick, so ids stay unique and increasing even
// under rapid creation. Identifiers are never reused, deleted or otherwise.
type orderIDGenerator struct {
	mu       sync.Mutex
	lastTick int64
	sequence int
	now      func() time.Time
}

// NewOrderIDGenerator creates a new order id generator instance.
func NewOrderIDGenerator() adapter.IDGenerator {
	return &orderIDGenerator{
		now: time.Now,
	}
}

// NextID returns a fresh unique order identifier.
func (g *orderIDGenerator) NextID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	tick := g.now().UnixMilli()
	if tick <= g.lastTick {
		tick = g.lastTick
		g.sequence++
	} else {
		g.lastTick = tick
		g.sequence = 0
	}

	if g.sequence == 0 {
		return fmt.Sprintf("ORD-%d", tick)
	}
	return fmt.Sprintf("ORD-%d-%d", tick, g.sequence)
}
