package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Calculation is one saved tip split for a shift. Rows are append-only:
// there is no update or delete path, a correction is a new row.
//
// The per-person columns are snapshots taken at save time, rounded for
// display. Multiplying them back by the headcounts does NOT necessarily
// reproduce the original role totals — analytics that reconstruct totals
// that way are approximations of history, which is accepted.
type Calculation struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	WaiterCount     int             `gorm:"not null"`
	CookCount       int             `gorm:"not null"`
	DishwasherCount int             `gorm:"not null"`

	WaiterPerPerson     decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	CookPerPerson       decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	DishwasherPerPerson decimal.Decimal `gorm:"type:decimal(12,4);not null"`

	CreatedAt time.Time `gorm:"index"`
}
