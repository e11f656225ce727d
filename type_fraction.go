package rebalance

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Fraction is a share of the total asset value, 0.4 meaning 40%.
//
// Fractions are exact decimals: two fractions are equal only if they are
// exactly equal, there is no tolerance.
type Fraction struct {
	value decimal.Decimal
}

var one = decimal.NewFromInt(1)

func F[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Fraction {
	return Fraction{value: newDecimal(value)}
}

// ParseFraction parses "0.4" or "40%".
func ParseFraction(s string) (Fraction, error) {
	str := strings.TrimSpace(s)
	percent := strings.HasSuffix(str, "%")
	str = strings.TrimSpace(strings.TrimSuffix(str, "%"))
	d, err := decimal.NewFromString(str)
	if err != nil {
		return Fraction{}, fmt.Errorf("invalid fraction %q: %w", s, err)
	}
	if percent {
		d = d.Shift(-2)
	}
	return Fraction{value: d}, nil
}

func (f Fraction) Equal(g Fraction) bool    { return f.value.Equal(g.value) }
func (f Fraction) Add(g Fraction) Fraction  { return Fraction{value: f.value.Add(g.value)} }
func (f Fraction) IsNegative() bool         { return f.value.IsNegative() }
func (f Fraction) IsZero() bool             { return f.value.IsZero() }
func (f Fraction) IsOne() bool              { return f.value.Equal(one) }
func (f Fraction) Decimal() decimal.Decimal { return f.value }

// String returns the fraction as an exact percentage, like "40%".
func (f Fraction) String() string {
	return f.value.Shift(2).String() + "%"
}

func (f Fraction) MarshalJSON() ([]byte, error) {
	return f.value.MarshalJSON()
}

func (f *Fraction) UnmarshalJSON(decimalBytes []byte) error {
	return f.value.UnmarshalJSON(decimalBytes)
}
