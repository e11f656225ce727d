package rebalance

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// JSONPrices is a read-only PriceSource over a JSON document.
//
// Prices are located with a JSONPath template receiving the identity through
// a single %q verb, for instance
//
//	$.quotes[%q].price
//
// Matched values can be JSON numbers or strings holding a decimal.
type JSONPrices struct {
	doc      any
	path     string
	currency string
}

// NewJSONPrices returns a price source over an already decoded document.
//
// Documents decoded with json.Decoder.UseNumber keep exact prices; plain
// float64 values are converted using their shortest representation.
func NewJSONPrices(doc any, path, currency string) (*JSONPrices, error) {
	if strings.Count(path, "%q") != 1 {
		return nil, fmt.Errorf("invalid price path %q: want exactly one %%q verb for the identity", path)
	}
	if currency != "" {
		if err := ValidateCurrency(currency); err != nil {
			return nil, err
		}
	}
	// compile once with a dummy identity to report syntax errors early.
	if _, err := jsonpath.New(fmt.Sprintf(path, "id")); err != nil {
		return nil, fmt.Errorf("invalid price path %q: %w", path, err)
	}
	return &JSONPrices{doc: doc, path: path, currency: currency}, nil
}

// DecodeJSONPrices reads a JSON document from r and returns a price source
// over it.
func DecodeJSONPrices(r io.Reader, path, currency string) (*JSONPrices, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot decode price document: %w", err)
	}
	return NewJSONPrices(doc, path, currency)
}

// Price implements PriceSource.
func (p *JSONPrices) Price(id string) (Money, bool) {
	v, err := jsonpath.Get(fmt.Sprintf(p.path, id), p.doc)
	if err != nil {
		return Money{}, false
	}
	d, ok := toDecimal(v)
	if !ok {
		return Money{}, false
	}
	return Money{value: d, cur: p.currency}, true
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		return d, err == nil
	case float64:
		return decimal.NewFromFloat(t), true
	case int:
		return decimal.NewFromInt(int64(t)), true
	case int64:
		return decimal.NewFromInt(t), true
	default:
		return decimal.Decimal{}, false
	}
}
