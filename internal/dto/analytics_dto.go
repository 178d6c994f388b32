package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsQuery selects the trailing window. The set is fixed: downstream
// charts are sized for these windows only.
type AnalyticsQuery struct {
	Days int `form:"days" validate:"omitempty,oneof=7 14 30 90 365"`
}

// TrendPoint is one calendar day of the daily trend. Days without records
// are present with zero amount and count — the series is always contiguous
// and exactly window-days long.
type TrendPoint struct {
	Date     string          `json:"date"` // short label, e.g. "Jan 2"
	FullDate time.Time       `json:"full_date"`
	Amount   decimal.Decimal `json:"amount"`
	Count    int             `json:"count"`
}

// WeekdayPoint is the average amount per record for one day of the week.
type WeekdayPoint struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// MonthPoint is the summed amount for one calendar month.
type MonthPoint struct {
	Name   string          `json:"name"` // e.g. "Jan 26"
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// DistributionBucket counts records whose amount falls in a half-open range.
type DistributionBucket struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// AnalyticsResponse bundles the four chart views. A nil response means
// "no history yet", which callers render as an empty state, not an error.
type AnalyticsResponse struct {
	TrendData        []TrendPoint         `json:"trend_data"`
	Average          decimal.Decimal      `json:"average"`
	WeeklyData       []WeekdayPoint       `json:"weekly_data"`
	MonthlyData      []MonthPoint         `json:"monthly_data"`
	DistributionData []DistributionBucket `json:"distribution_data"`
}
