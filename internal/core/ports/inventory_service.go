package ports

import (
	"context"

	"github.com/storemgmt/store-api/internal/core/domain"
)

// AddProductInput carries the data needed to create a catalog product.
type AddProductInput struct {
	Name     string
	Price    float64
	Quantity int
}

// InventoryService defines the catalog use cases.
//
// List fails with domain.ErrNoProducts when the catalog is empty; callers
// must treat an empty catalog as an explicit failure, not a valid empty
// result. UpdatePrice sets the price unconditionally; positivity is enforced
// at the boundary, not here.
type InventoryService interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Add(ctx context.Context, in AddProductInput) (*domain.Product, error)
	UpdatePrice(ctx context.Context, id string, price float64) (*domain.Product, error)
	// Purchase decrements stock by quantity. Fails with domain.ErrOutOfStock
	// when quantity exceeds available stock; no mutation occurs in that case.
	Purchase(ctx context.Context, id string, quantity int) (*domain.Product, error)
}
