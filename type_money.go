package badbets

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount in a currency, kept exact.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns value in currency cur.
func M(value decimal.Decimal, cur string) Money { return Money{value: value, cur: cur} }

// currency returns the money's currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the amount rounded to the currency's minor unit, with its symbol.
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// SignedString is like String with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	switch {
	case m.value.IsZero():
		return "-"
	case m.value.IsPositive():
		return "+" + m.String()
	default:
		return m.String()
	}
}

func (m Money) Currency() string            { return m.cur }
func (m Money) Value() decimal.Decimal      { return m.value }
func (m Money) IsZero() bool                { return m.value.IsZero() }
func (m Money) IsNegative() bool            { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool          { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) Add(n decimal.Decimal) Money { return Money{value: m.value.Add(n), cur: m.cur} }
