package rebalance

import "fmt"

// Holding is an asset identity bound to the source of its price.
//
// Holdings are immutable values. Two holdings are the same asset when their
// identities are equal, whatever source backs them; collections of holdings
// are therefore keyed by ID().
type Holding struct {
	id     string
	prices PriceSource
}

// NewHolding binds id to prices. It fails with ErrUnknownIdentity if prices
// has no price for id.
func NewHolding(id string, prices PriceSource) (Holding, error) {
	if id == "" {
		return Holding{}, fmt.Errorf("%w: empty identity", ErrUnknownIdentity)
	}
	if prices == nil {
		return Holding{}, fmt.Errorf("%w: %q has no price source", ErrUnknownIdentity, id)
	}
	if _, ok := prices.Price(id); !ok {
		return Holding{}, fmt.Errorf("%w: %q is not in the price source", ErrUnknownIdentity, id)
	}
	return Holding{id: id, prices: prices}, nil
}

// ID returns the identity of the holding.
func (h Holding) ID() string { return h.id }

// Equal reports whether h and o identify the same asset.
func (h Holding) Equal(o Holding) bool { return h.id == o.id }

func (h Holding) String() string { return h.id }

// Price returns the current price, read from the price source on each call.
func (h Holding) Price() (Money, error) {
	if h.prices == nil {
		return Money{}, fmt.Errorf("%w: %q has no price source", ErrUnknownIdentity, h.id)
	}
	p, ok := h.prices.Price(h.id)
	if !ok {
		return Money{}, fmt.Errorf("%w: %q is not in the price source", ErrUnknownIdentity, h.id)
	}
	return p, nil
}
