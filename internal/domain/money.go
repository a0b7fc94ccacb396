package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency is the set of currencies the service understands.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyCHF Currency = "CHF"
)

// Currencies lists all supported currencies in display order.
func Currencies() []Currency {
	return []Currency{CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyCHF}
}

func (c Currency) Valid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyCHF:
		return true
	}
	return false
}

// Money is an exact currency amount. Amounts are decimals, never floats;
// the zero value is 0 in the empty currency.
type Money struct {
	Value    decimal.Decimal `json:"value"`
	Currency Currency        `json:"currency"`
}

// NewMoney builds a Money from an integer amount, mostly for tests and fixtures.
func NewMoney(units int64, currency Currency) Money {
	return Money{Value: decimal.NewFromInt(units), Currency: currency}
}

// MoneyFromString parses an exact decimal amount.
func MoneyFromString(value string, currency Currency) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, fmt.Errorf("parse amount %q: %w", value, err)
	}
	return Money{Value: d, Currency: currency}, nil
}

func (m Money) String() string {
	return m.Value.String() + " " + string(m.Currency)
}

// Equal compares value and currency. Decimal comparison ignores
// representation, so 100 and 100.00 are equal.
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Value.Equal(other.Value)
}
