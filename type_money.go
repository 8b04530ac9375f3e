package advisor

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in the engine's single reporting
// currency (USD). Calculators keep raw float64 internally so that
// intermediate values stay unrounded; Money exists to carry exact values
// into reports and to format them with two decimals and thousands
// separators.
type Money struct {
	value decimal.Decimal
	cur   string
}

// USD builds a Money in the reporting currency.
func USD(value float64) Money {
	return Money{value: decimal.NewFromFloat(value), cur: money.USD}
}

// currency returns a never-nil currency for formatting.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String formats the value with the currency symbol, two decimals and
// thousands separators, e.g. "$26,000.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString is like String but with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value), cur: m.cur} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value), cur: m.cur} }

// AsFloat returns the value as a float64, for comparisons in tests.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }
