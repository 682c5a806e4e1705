package domain

import "time"

// Product is a catalog item. Quantity must never become negative; the
// product store enforces this with a conditional decrement.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RestockAlert records that a purchase left a product at or below the
// low-stock threshold.
type RestockAlert struct {
	ProductID   string
	ProductName string
	Remaining   int
	Threshold   int
	OccurredAt  time.Time
}
