// Package rebalance computes the trades needed to bring a portfolio back to
// its target allocation.
//
// A portfolio is a set of holdings, each bound to a price source, together
// with a target allocation (the fraction of the total asset value each
// holding should represent) and the quantities currently held.
//
// The core functionalities include:
//   - Exact Numbers: quantities, prices and allocation fractions are decimal
//     values. No binary floating point is involved in any computation, so an
//     allocation is valid only when its fractions sum to exactly 1.
//   - Price Sources: holdings look up their price on demand from an injected
//     PriceSource (an in-memory Market, a JSON document, or any function).
//   - Quantity Tracking: explicit add, remove and zero operations that never
//     let a held quantity go negative.
//   - Rebalancing: Rebalance returns a Plan with one signed change per
//     holding. A positive change is a quantity to buy, a negative change a
//     quantity to sell.
//
// A Portfolio is not safe for concurrent use. Callers sharing one must
// serialize access to it.
package rebalance
