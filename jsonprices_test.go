package rebalance

import (
	"strings"
	"testing"
)

const quotesJSON = `{
  "asOf": "2025-06-30",
  "quotes": {
    "AAPL": {"price": 187.25},
    "MSFT": {"price": "410.10"},
    "TINY": {"price": 0.000000000000000001},
    "BAD":  {"price": "n/a"},
    "NEST": {"price": {"last": 3}}
  }
}`

func TestJSONPrices(t *testing.T) {
	prices, err := DecodeJSONPrices(strings.NewReader(quotesJSON), "$.quotes[%q].price", "USD")
	if err != nil {
		t.Fatalf("DecodeJSONPrices() failed: %v", err)
	}

	testCases := []struct {
		id     string
		want   string
		wantOK bool
	}{
		{id: "AAPL", want: "187.25", wantOK: true},
		{id: "MSFT", want: "410.1", wantOK: true},
		{id: "TINY", want: "0.000000000000000001", wantOK: true},
		{id: "BAD"},
		{id: "NEST"},
		{id: "GOOG"},
	}
	for _, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			got, ok := prices.Price(tc.id)
			if ok != tc.wantOK {
				t.Fatalf("Price(%q) ok = %v, want %v", tc.id, ok, tc.wantOK)
			}
			if !ok {
				return
			}
			want, err := ParseMoney(tc.want, "USD")
			if err != nil {
				t.Fatalf("ParseMoney(%q) failed: %v", tc.want, err)
			}
			if !got.Equal(want) {
				t.Errorf("Price(%q) = %v, want %v", tc.id, got.Decimal(), want.Decimal())
			}
		})
	}
}

func TestJSONPrices_BackHoldings(t *testing.T) {
	prices, err := DecodeJSONPrices(strings.NewReader(quotesJSON), "$.quotes[%q].price", "USD")
	if err != nil {
		t.Fatalf("DecodeJSONPrices() failed: %v", err)
	}
	if _, err := NewHolding("AAPL", prices); err != nil {
		t.Errorf("NewHolding(AAPL) failed: %v", err)
	}
	if _, err := NewHolding("GOOG", prices); err == nil {
		t.Error("NewHolding(GOOG) expected an error, got nil")
	}
}

func TestNewJSONPrices_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		currency string
	}{
		{"no identity verb", "$.quotes.AAPL.price", "USD"},
		{"two identity verbs", "$.quotes[%q][%q]", "USD"},
		{"unknown currency", "$.quotes[%q].price", "usd"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewJSONPrices(map[string]any{}, tc.path, tc.currency); err == nil {
				t.Errorf("NewJSONPrices(%q, %q) expected an error, got nil", tc.path, tc.currency)
			}
		})
	}
}

func TestDecodeJSONPrices_InvalidDocument(t *testing.T) {
	if _, err := DecodeJSONPrices(strings.NewReader(`{"quotes":`), "$.quotes[%q].price", ""); err == nil {
		t.Error("DecodeJSONPrices() expected an error for a truncated document, got nil")
	}
}
