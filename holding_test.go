package rebalance

import (
	"errors"
	"testing"
)

func TestNewHolding(t *testing.T) {
	market := newTestMarket(t, map[string]float64{"AAPL": 187.25})

	testCases := []struct {
		name    string
		id      string
		src     PriceSource
		wantErr error
	}{
		{name: "known identity", id: "AAPL", src: market},
		{name: "unknown identity", id: "GOOG", src: market, wantErr: ErrUnknownIdentity},
		{name: "empty identity", id: "", src: market, wantErr: ErrUnknownIdentity},
		{name: "nil source", id: "AAPL", src: nil, wantErr: ErrUnknownIdentity},
		{
			name: "function source",
			id:   "CASH",
			src: PriceFunc(func(id string) (Money, bool) {
				return USD(1), id == "CASH"
			}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, err := NewHolding(tc.id, tc.src)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("NewHolding(%q) error = %v, want %v", tc.id, err, tc.wantErr)
			}
			if err == nil && h.ID() != tc.id {
				t.Errorf("ID() = %q, want %q", h.ID(), tc.id)
			}
		})
	}
}

func TestHolding_PriceIsNotCached(t *testing.T) {
	market := newTestMarket(t, map[string]float64{"AAPL": 187.25})
	h := mustHolding(t, "AAPL", market)

	market.Set("AAPL", USD(190))
	got, err := h.Price()
	if err != nil {
		t.Fatalf("Price() failed: %v", err)
	}
	if !got.Equal(USD(190)) {
		t.Errorf("Price() = %v, want %v", got, USD(190))
	}

	market.Delete("AAPL")
	if _, err := h.Price(); !errors.Is(err, ErrUnknownIdentity) {
		t.Errorf("Price() after delete error = %v, want %v", err, ErrUnknownIdentity)
	}
}

func TestHolding_ZeroValue(t *testing.T) {
	var h Holding
	if _, err := h.Price(); !errors.Is(err, ErrUnknownIdentity) {
		t.Errorf("Price() on zero Holding error = %v, want %v", err, ErrUnknownIdentity)
	}
}

func TestHolding_Equal(t *testing.T) {
	a := mustHolding(t, "AAPL", newTestMarket(t, map[string]float64{"AAPL": 187.25}))
	b := mustHolding(t, "AAPL", newTestMarket(t, map[string]float64{"AAPL": 1}))
	c := mustHolding(t, "MSFT", newTestMarket(t, map[string]float64{"MSFT": 187.25}))

	if !a.Equal(b) {
		t.Error("holdings with the same identity and different sources are not equal")
	}
	if a.Equal(c) {
		t.Error("holdings with different identities are equal")
	}
}
