package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/storemgmt/store-api/internal/core/domain"
	"github.com/storemgmt/store-api/internal/core/ports"
)

// RestockEnqueuer hands low-stock alerts to the async restock pipeline.
type RestockEnqueuer interface {
	Enqueue(alert ports.RestockAlertInput)
}

// InventoryService implements catalog reads and the two stateful mutations:
// price change and stock decrement.
type InventoryService struct {
	repo              ports.ProductRepository
	restock           RestockEnqueuer
	lowStockThreshold int
	logger            zerolog.Logger
}

func NewInventoryService(repo ports.ProductRepository, restock RestockEnqueuer, lowStockThreshold int, logger zerolog.Logger) *InventoryService {
	return &InventoryService{
		repo:              repo,
		restock:           restock,
		lowStockThreshold: lowStockThreshold,
		logger:            logger,
	}
}

func (s *InventoryService) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns every product in the store. An empty catalog is an explicit
// failure, not an empty slice.
func (s *InventoryService) List(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.ErrNoProducts
	}
	return products, nil
}

func (s *InventoryService) Add(ctx context.Context, in ports.AddProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		Name:      in.Name,
		Price:     in.Price,
		Quantity:  in.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", in.Name).Msg("failed to add product")
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product added")
	return created, nil
}

// UpdatePrice sets the product's price unconditionally. The boundary layer
// rejects non-positive prices before this call is reached; this layer trusts
// its caller for that field.
func (s *InventoryService) UpdatePrice(ctx context.Context, id string, price float64) (*domain.Product, error) {
	updated, err := s.repo.UpdatePrice(ctx, id, price)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", id).Float64("price", price).Msg("price updated")
	return updated, nil
}

// Purchase decrements stock through the repository's conditional update, so
// quantity can never be observed negative even under concurrent purchases.
// When the decrement leaves stock at or below the threshold, a restock alert
// is enqueued without blocking the purchase.
func (s *InventoryService) Purchase(ctx context.Context, id string, quantity int) (*domain.Product, error) {
	updated, err := s.repo.DecrementStock(ctx, id, quantity)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("product_id", updated.ID).
		Int("quantity", quantity).
		Int("remaining", updated.Quantity).
		Msg("purchase completed")

	if s.restock != nil && updated.Quantity <= s.lowStockThreshold {
		s.restock.Enqueue(ports.RestockAlertInput{
			ProductID:   updated.ID,
			ProductName: updated.Name,
			Remaining:   updated.Quantity,
			Threshold:   s.lowStockThreshold,
		})
	}

	return updated, nil
}
