// Package money provides the Money value object used for every monetary
// amount in the system. Amounts are arbitrary-precision decimals, never
// binary floating point, so balance arithmetic cannot drift.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount.
// The zero value is zero money and is safe to use.
type Money struct {
	amount decimal.Decimal
}

// New creates a Money value from a decimal amount.
func New(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// NewFromString parses a decimal string (e.g. "5000", "49.99") into Money.
// Returns an error if the string is not a valid decimal number.
func NewFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{amount: d}, nil
}

// NewFromInt creates a Money value from whole currency units.
func NewFromInt(amount int64) Money {
	return Money{amount: decimal.NewFromInt(amount)}
}

// Zero returns a zero Money value.
func Zero() Money {
	return Money{}
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns the sum of m and other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of m and other.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// LessThan reports whether m is strictly less than other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// Equals reports whether m and other represent the same amount.
// Trailing zeros are not significant: 50 equals 50.00.
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsPositive returns true if the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsNegative returns true if the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String returns the decimal representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}
