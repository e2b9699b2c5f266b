package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum_NoFloatDrift(t *testing.T) {
	prices := []float64{0.1, 0.2, 0.3}
	total := Sum(prices, FromFloat)
	assert.Equal(t, "$0.60", Format(total))
	assert.True(t, total.Equal(decimal.RequireFromString("0.6")))
}

func TestSum_PriceTimesQuantity(t *testing.T) {
	type line struct {
		price float64
		qty   int
	}
	lines := []line{{1.19, 2}, {0.3, 12}, {4, 1}}
	total := Sum(lines, func(l line) decimal.Decimal {
		return FromFloat(l.price).Mul(decimal.NewFromInt(int64(l.qty)))
	})
	assert.Equal(t, "$9.98", Format(total))
}

func TestSum_Empty(t *testing.T) {
	assert.Equal(t, "$0.00", Format(Sum([]float64(nil), FromFloat)))
}

func TestParse(t *testing.T) {
	for in, want := range map[string]float64{
		"":      0,
		"12":    12,
		"12.5":  12.5,
		"12,50": 12.5,
		" 3.1 ": 3.1,
	} {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"-1", "abc", "1.2.3"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, in)
	}
}
