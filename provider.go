package rebalance

// PriceSource provides the current price of a holding identity.
//
// Price returns false when the identity is unknown. Implementations may be
// shared by many holdings and must return exact decimal prices.
type PriceSource interface {
	Price(id string) (Money, bool)
}

// PriceFunc adapts an ordinary lookup function into a PriceSource.
type PriceFunc func(id string) (Money, bool)

// Price calls f(id).
func (f PriceFunc) Price(id string) (Money, bool) { return f(id) }
