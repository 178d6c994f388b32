package service

import "github.com/shopspring/decimal"

// Tip split rule:
//   Waiters always take 75%.
//   With no dishwasher on shift, cooks take the remaining 25%.
//   With a dishwasher, cooks take 20% and the dishwasher 5%.
// The three shares sum to 100% of the pool on both branches.

var (
	waiterShare       = decimal.New(75, -2)
	cookShareNoDish   = decimal.New(25, -2)
	cookShareWithDish = decimal.New(20, -2)
	dishwasherShare   = decimal.New(5, -2)
)

// Allocation is the outcome of splitting one pooled tip amount.
// Shares are fractions of the total (0.75 means 75%).
type Allocation struct {
	WaiterShare     decimal.Decimal
	CookShare       decimal.Decimal
	DishwasherShare decimal.Decimal

	WaiterTotal     decimal.Decimal
	CookTotal       decimal.Decimal
	DishwasherTotal decimal.Decimal

	WaiterPerPerson     decimal.Decimal
	CookPerPerson       decimal.Decimal
	DishwasherPerPerson decimal.Decimal
}

// SplitTips divides total between the three roles. It assumes non-negative
// input — the handler validates before calling. A role with zero headcount
// gets a per-person share of zero, never a division by zero.
func SplitTips(total decimal.Decimal, waiters, cooks, dishwashers int) Allocation {
	cookShare := cookShareWithDish
	dishShare := dishwasherShare
	if dishwashers == 0 {
		cookShare = cookShareNoDish
		dishShare = decimal.Zero
	}

	a := Allocation{
		WaiterShare:     waiterShare,
		CookShare:       cookShare,
		DishwasherShare: dishShare,

		WaiterTotal:     total.Mul(waiterShare),
		CookTotal:       total.Mul(cookShare),
		DishwasherTotal: total.Mul(dishShare),
	}
	a.WaiterPerPerson = perPerson(a.WaiterTotal, waiters)
	a.CookPerPerson = perPerson(a.CookTotal, cooks)
	a.DishwasherPerPerson = perPerson(a.DishwasherTotal, dishwashers)
	return a
}

func perPerson(roleTotal decimal.Decimal, count int) decimal.Decimal {
	if count <= 0 {
		return decimal.Zero
	}
	return roleTotal.Div(decimal.NewFromInt(int64(count)))
}
