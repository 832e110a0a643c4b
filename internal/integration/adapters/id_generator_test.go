package adapters

import (
	"sync"
	"testing"
	"time"
)

func TestNextIDWithinOneTickAppendsSequence(t *testing.T) {
	fixed := time.UnixMilli(1700000000000)
	gen := &orderIDGenerator{now: func() time.Time { return fixed }}

	first := gen.NextID()
	second := gen.NextID()
	third := gen.NextID()

	if first != "ORD-1700000000000" {
		t.Errorf("expected plain tick id, got %s", first)
	}
	if second != "ORD-1700000000000-1" || third != "ORD-1700000000000-2" {
		t.Errorf("expected sequence suffixes, got %s, %s", second, third)
	}
}

func TestNextIDNewTickResetsSequence(t *testing.T) {
	tick := time.UnixMilli(1700000000000)
	gen := &orderIDGenerator{now: func() time.Time { return tick }}

	gen.NextID()
	gen.NextID()
	tick = tick.Add(time.Millisecond)

	if id := gen.NextID(); id != "ORD-1700000000001" {
		t.Fatalf("expected fresh tick id, got %s", id)
	}
}

func TestNextIDClockGoingBackwardsStaysUnique(t *testing.T) {
	tick := time.UnixMilli(1700000000005)
	gen := &orderIDGenerator{now: func() time.Time { return tick }}

	first := gen.NextID()
	tick = time.UnixMilli(1700000000001)
	second := gen.NextID()

	if first == second {
		t.Fatalf("expected distinct ids, got %s twice", first)
	}
	if second != "ORD-1700000000005-1" {
		t.Fatalf("expected the generator to hold its high-water tick, got %s", second)
	}
}

func TestNextIDConcurrentCallsAreUnique(t *testing.T) {
	gen := NewOrderIDGenerator()

	const workers = 8
	const perWorker = 250

	var mu sync.Mutex
	seen := make(map[string]bool, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := gen.NextID()
				mu.Lock()
				if seen[id] {
					t.Errorf("duplicate id %s", id)
				}
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
}
