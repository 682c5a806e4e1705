package handler

import "time"

type addProductRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
	Quantity int     `json:"quantity" validate:"gte=0"`
}

// updatePriceRequest rejects non-positive prices before the service is
// reached; the service itself sets the price unconditionally.
type updatePriceRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type purchaseRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// productResponse is the transport view of a catalog product, intentionally
// separate from the domain type so the JSON contract is not coupled to
// internal changes.
type productResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type productListResponse struct {
	Data []productResponse `json:"data"`
}
