package rebalance

import (
	"fmt"
	"iter"
	"log"
)

// Target is the share of the total asset value a holding should represent.
type Target struct {
	Holding  Holding
	Fraction Fraction
}

// Portfolio tracks the quantities held against a fixed target allocation.
//
// The allocation is set at construction and never changes. Quantities start
// at zero and are only changed through AddStockAmount, RemStockAmount,
// SetStockToZero and Apply. Every operation validates its arguments before
// mutating anything: a failed call leaves the portfolio unchanged.
//
// A Portfolio is not safe for concurrent use.
type Portfolio struct {
	holdings   []Holding // in construction order
	allocation map[string]Fraction
	held       map[string]Quantity

	precision int32
	logger    *log.Logger
}

// NewPortfolio returns a portfolio aiming at targets, with nothing held.
//
// It fails with an *AllocationError (matching ErrInvalidAllocation) if a
// holding appears twice, if a fraction is negative, or if the fractions do
// not sum to exactly 1.
func NewPortfolio(targets []Target, opts ...Option) (*Portfolio, error) {
	p := &Portfolio{
		holdings:   make([]Holding, 0, len(targets)),
		allocation: make(map[string]Fraction, len(targets)),
		held:       make(map[string]Quantity, len(targets)),
		precision:  defaultPrecision,
	}
	for _, opt := range opts {
		opt(p)
	}

	for _, t := range targets {
		if _, exists := p.allocation[t.Holding.ID()]; exists {
			return nil, &AllocationError{Reason: AllocationDuplicate, ID: t.Holding.ID()}
		}
		p.allocation[t.Holding.ID()] = t.Fraction
	}
	for _, t := range targets {
		if t.Fraction.IsNegative() {
			return nil, &AllocationError{Reason: AllocationNegative, ID: t.Holding.ID(), Value: t.Fraction}
		}
	}
	var sum Fraction
	for _, t := range targets {
		sum = sum.Add(t.Fraction)
	}
	if !sum.IsOne() {
		return nil, &AllocationError{Reason: AllocationSumMismatch, Value: sum}
	}

	for _, t := range targets {
		p.holdings = append(p.holdings, t.Holding)
		p.held[t.Holding.ID()] = Quantity{}
	}
	return p, nil
}

// Len returns the number of holdings in the allocation.
func (p *Portfolio) Len() int { return len(p.holdings) }

// Holdings iterates over the holdings in construction order.
func (p *Portfolio) Holdings() iter.Seq[Holding] {
	return func(yield func(Holding) bool) {
		for _, h := range p.holdings {
			if !yield(h) {
				return
			}
		}
	}
}

// Allocation returns the target fraction of h.
func (p *Portfolio) Allocation(h Holding) (Fraction, error) {
	f, ok := p.allocation[h.ID()]
	if !ok {
		return Fraction{}, unknownHolding(h)
	}
	return f, nil
}

// Quantity returns the quantity currently held of h.
func (p *Portfolio) Quantity(h Holding) (Quantity, error) {
	q, ok := p.held[h.ID()]
	if !ok {
		return Quantity{}, unknownHolding(h)
	}
	return q, nil
}

// AddStockAmount increases the quantity held of h by amount. A zero amount
// is a no-op.
func (p *Portfolio) AddStockAmount(h Holding, amount Quantity) error {
	q, ok := p.held[h.ID()]
	if !ok {
		return unknownHolding(h)
	}
	if amount.IsNegative() {
		return fmt.Errorf("%w: cannot add %s of %q", ErrInvalidAmount, amount, h.ID())
	}
	p.held[h.ID()] = q.Add(amount)
	return nil
}

// RemStockAmount decreases the quantity held of h by amount. Removing
// exactly what is held leaves zero.
func (p *Portfolio) RemStockAmount(h Holding, amount Quantity) error {
	q, ok := p.held[h.ID()]
	if !ok {
		return unknownHolding(h)
	}
	if amount.IsNegative() {
		return fmt.Errorf("%w: cannot remove %s of %q", ErrInvalidAmount, amount, h.ID())
	}
	if amount.GreaterThan(q) {
		return fmt.Errorf("%w: cannot remove %s of %q, only %s held", ErrInsufficientHolding, amount, h.ID(), q)
	}
	p.held[h.ID()] = q.Sub(amount)
	return nil
}

// SetStockToZero sets the quantity held of h to zero.
func (p *Portfolio) SetStockToZero(h Holding) error {
	if _, ok := p.held[h.ID()]; !ok {
		return unknownHolding(h)
	}
	p.held[h.ID()] = Quantity{}
	return nil
}

// Apply adds every change of plan to the quantities held, as if the plan
// had been executed at its prices.
//
// It fails without changing anything if an order is for a holding not in
// the allocation or would leave a negative quantity.
func (p *Portfolio) Apply(plan Plan) error {
	next := make(map[string]Quantity, len(plan.Orders))
	for _, o := range plan.Orders {
		q, ok := next[o.ID]
		if !ok {
			q, ok = p.held[o.ID]
		}
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownHolding, o.ID)
		}
		q = q.Add(o.Change)
		if q.IsNegative() {
			return fmt.Errorf("%w: cannot sell %s of %q", ErrInsufficientHolding, o.Change.Neg(), o.ID)
		}
		next[o.ID] = q
	}
	for id, q := range next {
		p.held[id] = q
	}
	return nil
}

func unknownHolding(h Holding) error {
	return fmt.Errorf("%w: %q is not in the allocation", ErrUnknownHolding, h.ID())
}
