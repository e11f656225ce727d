package rebalance

import (
	"encoding/json"
	"fmt"
)

// Side is the action an order calls for.
type Side int

const (
	Hold Side = iota
	Buy
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "hold"
	}
}

// Order is the rebalancing of a single holding.
type Order struct {
	ID          string
	Price       Money    // price used for this plan
	Held        Quantity // quantity held when the plan was computed
	Target      Quantity // quantity to hold after rebalancing
	TargetValue Money    // Target at Price
	Change      Quantity // Target - Held
}

// Side returns Buy for a positive change, Sell for a negative one and Hold
// when nothing needs to be done.
func (o Order) Side() Side {
	switch {
	case o.Change.IsPositive():
		return Buy
	case o.Change.IsNegative():
		return Sell
	default:
		return Hold
	}
}

func (o Order) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", o.ID)
	w.Append("side", o.Side().String())
	w.Append("price", o.Price)
	w.Append("held", o.Held)
	w.Append("target", o.Target)
	w.Append("targetValue", o.TargetValue)
	w.Append("change", o.Change)
	return w.MarshalJSON()
}

// Plan is the result of a rebalance: one order per holding of the
// portfolio, in the portfolio's order, including holdings with nothing to
// do.
type Plan struct {
	TotalValue Money // value of everything held, at the plan prices
	Orders     []Order
}

// Changes returns the signed change per holding identity. A positive change
// is a quantity to buy, a negative change a quantity to sell.
func (p Plan) Changes() map[string]Quantity {
	changes := make(map[string]Quantity, len(p.Orders))
	for _, o := range p.Orders {
		changes[o.ID] = o.Change
	}
	return changes
}

func (p Plan) MarshalJSON() ([]byte, error) {
	orders := p.Orders
	if orders == nil {
		orders = []Order{}
	}
	var w jsonObjectWriter
	w.Append("totalValue", p.TotalValue)
	w.Append("orders", orders)
	return w.MarshalJSON()
}

// String returns the plan as indented JSON.
func (p Plan) String() string {
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Sprintf("invalid plan: %v", err)
	}
	return string(b)
}

// Rebalance computes, for every holding, the quantity to buy or sell so that
// each holding is worth its target fraction of the current total asset value.
//
// Each holding price is read exactly once, and used both for the total
// value and for that holding's target quantity. Rebalance does not change
// the portfolio, see Apply.
//
// It fails with ErrUnknownIdentity if a price is missing, ErrInvalidPrice if
// a price is zero or negative, and ErrCurrencyMismatch if holdings are priced
// in different currencies.
func (p *Portfolio) Rebalance() (Plan, error) {
	prices := make([]Money, len(p.holdings))
	var total Money
	for i, h := range p.holdings {
		price, err := h.Price()
		if err != nil {
			return Plan{}, fmt.Errorf("cannot rebalance: %w", err)
		}
		if !price.IsPositive() {
			return Plan{}, fmt.Errorf("cannot rebalance: %w: %q is priced %s", ErrInvalidPrice, h.ID(), price.value)
		}
		if !total.compatible(price) {
			return Plan{}, fmt.Errorf("cannot rebalance: %w: %q is priced in %s, want %s", ErrCurrencyMismatch, h.ID(), price.Currency(), total.Currency())
		}
		prices[i] = price
		total = total.Add(price.Mul(p.held[h.ID()]))
	}
	p.logf("rebalance: total asset value %s", total.value)

	plan := Plan{TotalValue: total, Orders: make([]Order, 0, len(p.holdings))}
	for i, h := range p.holdings {
		held := p.held[h.ID()]
		targetValue := total.MulFraction(p.allocation[h.ID()])
		target := targetValue.DivPrice(prices[i], p.precision)
		o := Order{
			ID:          h.ID(),
			Price:       prices[i],
			Held:        held,
			Target:      target,
			TargetValue: targetValue,
			Change:      target.Sub(held),
		}
		p.logf("rebalance: %s %s of %q (held %s, target %s)", o.Side(), o.Change.Abs(), o.ID, held, target)
		plan.Orders = append(plan.Orders, o)
	}
	return plan, nil
}

func (p *Portfolio) logf(format string, args ...any) {
	if p.logger != nil {
		p.logger.Printf(format, args...)
	}
}
