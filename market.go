package rebalance

import (
	"maps"
	"slices"
	"sync"
)

// Market is an in-memory price table keyed by holding identity.
//
// It is safe for concurrent use, so a single Market can back many holdings
// while prices are being updated.
type Market struct {
	mu     sync.RWMutex
	prices map[string]Money
}

// NewMarket returns a new empty market.
func NewMarket() *Market {
	return &Market{
		prices: make(map[string]Money),
	}
}

// Set records the current price of id, replacing any previous one.
func (m *Market) Set(id string, price Money) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prices[id] = price
}

// Delete forgets id.
func (m *Market) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.prices, id)
}

func (m *Market) Has(id string) bool {
	_, ok := m.Price(id)
	return ok
}

// Price implements PriceSource.
func (m *Market) Price(id string) (Money, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.prices[id]
	return p, ok
}

// IDs returns the known identities in ascending order.
func (m *Market) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.prices))
}
