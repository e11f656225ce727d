package rebalance

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// equateNumbers compares decimal backed values by value, 4 == 4.00.
var equateNumbers = cmp.Options{
	cmp.Comparer(func(a, b Quantity) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Money) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Fraction) bool { return a.Equal(b) }),
}

// newTestMarket returns a market with prices in USD.
func newTestMarket(t *testing.T, prices map[string]float64) *Market {
	t.Helper()
	m := NewMarket()
	for id, p := range prices {
		m.Set(id, USD(p))
	}
	return m
}

func mustHolding(t *testing.T, id string, src PriceSource) Holding {
	t.Helper()
	h, err := NewHolding(id, src)
	if err != nil {
		t.Fatalf("NewHolding(%q) failed: %v", id, err)
	}
	return h
}

func mustPortfolio(t *testing.T, targets []Target, opts ...Option) *Portfolio {
	t.Helper()
	p, err := NewPortfolio(targets, opts...)
	if err != nil {
		t.Fatalf("NewPortfolio() failed: %v", err)
	}
	return p
}

func mustQuantity(t *testing.T, p *Portfolio, h Holding) Quantity {
	t.Helper()
	q, err := p.Quantity(h)
	if err != nil {
		t.Fatalf("Quantity(%s) failed: %v", h, err)
	}
	return q
}
