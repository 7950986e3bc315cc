// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

// NewMoney creates a Money value from a float.
// WARNING: Use NewMoneyFromString for precise values.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// RoundMoney rounds to 2 decimal places, the persistence scale.
// Intermediate arithmetic keeps full precision; call this only when
// writing a final figure to storage or a response.
func RoundMoney(m Money) Money {
	return m.Round(2)
}

// FormatMoney renders a value with exactly two fractional digits,
// the wire representation of every monetary field.
func FormatMoney(m Money) string {
	return m.StringFixed(2)
}

// Percent applies pct (expressed as 0..100) to base at full precision.
func Percent(base, pct Money) Money {
	return base.Mul(pct).Div(decimal.NewFromInt(100))
}
