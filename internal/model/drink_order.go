package model

import (
	"time"

	"github.com/google/uuid"
)

// DrinkOrder is one write-off submission: a batch of drinks taken off
// inventory, stored with its item list serialized as JSON. Quantities are
// aggregated by (category, name) when the monthly report is built.
type DrinkOrder struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Items     string    `gorm:"type:jsonb;not null"`
	CreatedAt time.Time `gorm:"index"`
}

// DrinkOrderItem is one entry of the serialized Items payload.
type DrinkOrderItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}
