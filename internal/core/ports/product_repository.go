package ports

import (
	"context"

	"github.com/storemgmt/store-api/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)

	// UpdatePrice sets the product's price in a single statement and returns
	// the updated record. Returns domain.ErrProductNotFound when absent.
	UpdatePrice(ctx context.Context, id string, price float64) (*domain.Product, error)

	// DecrementStock atomically decrements quantity by n only when the stored
	// quantity is at least n, and returns the updated record. Returns
	// domain.ErrOutOfStock when stock is insufficient (no mutation) and
	// domain.ErrProductNotFound when the product does not exist. The
	// conditional update is what keeps quantity non-negative under
	// concurrent purchases; callers must not pre-check and write.
	DecrementStock(ctx context.Context, id string, n int) (*domain.Product, error)
}
