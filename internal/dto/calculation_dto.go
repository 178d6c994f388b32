package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateCalculationRequest carries the inputs of one tip split. Negative
// amounts and counts are rejected here — the allocation engine itself is
// only defined over non-negative input.
type CreateCalculationRequest struct {
	TotalAmount     decimal.Decimal `json:"total_amount"     validate:"min=0"`
	WaiterCount     int             `json:"waiter_count"     validate:"min=0"`
	CookCount       int             `json:"cook_count"       validate:"min=0"`
	DishwasherCount int             `json:"dishwasher_count" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// RoleShare is the allocation outcome for a single role.
type RoleShare struct {
	SharePct  decimal.Decimal `json:"share_pct"` // 0..1
	Total     decimal.Decimal `json:"total"`
	Count     int             `json:"count"`
	PerPerson decimal.Decimal `json:"per_person"`
}

type CalculationResponse struct {
	ID          string          `json:"id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Waiters     RoleShare       `json:"waiters"`
	Cooks       RoleShare       `json:"cooks"`
	Dishwashers RoleShare       `json:"dishwashers"`
	CreatedAt   string          `json:"created_at"`
}
