package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type DrinkOrderItemRequest struct {
	Name     string `json:"name"     validate:"required"`
	Category string `json:"category" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=0"`
}

// CreateDrinkOrderRequest is one write-off submission. Zero-quantity items
// are dropped server-side; at least one item must survive.
type CreateDrinkOrderRequest struct {
	Items []DrinkOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type ReportQuery struct {
	Month int `form:"month" validate:"omitempty,min=1,max=12"`
	Year  int `form:"year"  validate:"omitempty,min=2000,max=2200"`
}

type SendReportRequest struct {
	Month int    `json:"month" validate:"omitempty,min=1,max=12"`
	Year  int    `json:"year"  validate:"omitempty,min=2000,max=2200"`
	Email string `json:"email" validate:"omitempty,email"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DrinkOrderResponse struct {
	ID        string `json:"id"`
	ItemCount int    `json:"item_count"`
	CreatedAt string `json:"created_at"`
}

// DrinkReportItem is one display row of the monthly report. Display is the
// raw quantity for ordinary items, or a liter total (e.g. "1.5l") for
// volume-stacked ones; Quantity is 0 for stacked rows.
type DrinkReportItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Display  string `json:"display"`
	Quantity int    `json:"quantity"`
}

type DrinkReportResponse struct {
	Month       int               `json:"month"`
	Year        int               `json:"year"`
	TotalOrders int               `json:"total_orders"`
	Items       []DrinkReportItem `json:"items"`
	Report      string            `json:"report"`
}
