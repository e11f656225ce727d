package rebalance

import (
	"log"

	"github.com/shopspring/decimal"
)

// Option configures a Portfolio.
type Option func(*Portfolio)

// WithPrecision sets the number of decimal places kept when converting a
// target value into a quantity. Negative values are ignored.
//
// Defaults to decimal.DivisionPrecision.
func WithPrecision(places int32) Option {
	return func(p *Portfolio) {
		if places >= 0 {
			p.precision = places
		}
	}
}

// WithLogger traces rebalance computations to l. A nil logger disables
// tracing, which is the default.
func WithLogger(l *log.Logger) Option {
	return func(p *Portfolio) {
		p.logger = l
	}
}

var defaultPrecision = int32(decimal.DivisionPrecision)
