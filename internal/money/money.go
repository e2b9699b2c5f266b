// Package money sums and formats the float prices stored in records without
// float rounding drift.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Sum adds f(it) over items exactly.
func Sum[T any](items []T, f func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(f(it))
	}
	return total
}

func FromFloat(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// Format renders d as dollars with two decimals, e.g. "$12.30".
func Format(d decimal.Decimal) string { return "$" + d.StringFixed(2) }

// Parse reads a non-negative amount typed by the user. Both "12.5" and
// "12,5" are accepted; an empty string is zero.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if d.IsNegative() {
		return 0, ErrInvalidAmount
	}
	return d.InexactFloat64(), nil
}
