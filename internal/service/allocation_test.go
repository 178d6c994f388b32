package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSplitTipsWithDishwasher(t *testing.T) {
	a := SplitTips(dec("100"), 2, 1, 1)

	assert.True(t, a.WaiterShare.Equal(dec("0.75")))
	assert.True(t, a.CookShare.Equal(dec("0.20")))
	assert.True(t, a.DishwasherShare.Equal(dec("0.05")))

	assert.True(t, a.WaiterTotal.Equal(dec("75")), "waiter total: %s", a.WaiterTotal)
	assert.True(t, a.CookTotal.Equal(dec("20")), "cook total: %s", a.CookTotal)
	assert.True(t, a.DishwasherTotal.Equal(dec("5")), "dishwasher total: %s", a.DishwasherTotal)

	assert.True(t, a.WaiterPerPerson.Equal(dec("37.5")))
	assert.True(t, a.CookPerPerson.Equal(dec("20")))
	assert.True(t, a.DishwasherPerPerson.Equal(dec("5")))
}

func TestSplitTipsNoDishwasher(t *testing.T) {
	// With nobody on dishes, their 5% folds into the cooks' share.
	a := SplitTips(dec("50.50"), 1, 2, 0)

	assert.True(t, a.CookShare.Equal(dec("0.25")))
	assert.True(t, a.DishwasherShare.IsZero())

	assert.True(t, a.WaiterTotal.Equal(dec("37.875")))
	assert.True(t, a.CookTotal.Equal(dec("12.625")))
	assert.True(t, a.DishwasherTotal.IsZero())

	assert.True(t, a.WaiterPerPerson.Equal(dec("37.875")))
	assert.True(t, a.CookPerPerson.Equal(dec("6.3125")))
	assert.True(t, a.DishwasherPerPerson.IsZero())
}

func TestSplitTipsCompleteness(t *testing.T) {
	// The three role totals always reassemble the pool exactly.
	cases := []struct {
		total                      string
		waiters, cooks, dishwashers int
	}{
		{"100", 2, 1, 1},
		{"50.50", 1, 2, 0},
		{"0.01", 1, 1, 1},
		{"123.45", 3, 2, 2},
		{"999999.99", 1, 1, 0},
	}
	for _, tc := range cases {
		a := SplitTips(dec(tc.total), tc.waiters, tc.cooks, tc.dishwashers)
		sum := a.WaiterTotal.Add(a.CookTotal).Add(a.DishwasherTotal)
		require.True(t, sum.Equal(dec(tc.total)),
			"total %s split into %s + %s + %s", tc.total, a.WaiterTotal, a.CookTotal, a.DishwasherTotal)
	}
}

func TestSplitTipsZeroHeadcount(t *testing.T) {
	// A role with no people still accrues its total, but per-person stays
	// zero instead of dividing by zero.
	a := SplitTips(dec("80"), 0, 0, 1)

	assert.True(t, a.WaiterTotal.Equal(dec("60")))
	assert.True(t, a.WaiterPerPerson.IsZero())
	assert.True(t, a.CookPerPerson.IsZero())
	assert.True(t, a.DishwasherPerPerson.Equal(dec("4")))
}

func TestSplitTipsZeroTotal(t *testing.T) {
	a := SplitTips(decimal.Zero, 2, 1, 1)

	assert.True(t, a.WaiterTotal.IsZero())
	assert.True(t, a.CookTotal.IsZero())
	assert.True(t, a.DishwasherTotal.IsZero())
	assert.True(t, a.WaiterPerPerson.IsZero())
}
