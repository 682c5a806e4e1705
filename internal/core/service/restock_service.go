package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/storemgmt/store-api/internal/core/domain"
	"github.com/storemgmt/store-api/internal/core/ports"
)

// DedupChecker abstracts the alert suppression store (Redis). A product that
// already raised an alert inside the TTL window is skipped.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, productID string) (bool, error)
	Mark(ctx context.Context, productID string) error
}

type restockService struct {
	repo  ports.RestockRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewRestockService returns a RestockService implementation.
func NewRestockService(repo ports.RestockRepository, dedup DedupChecker, log zerolog.Logger) ports.RestockService {
	return &restockService{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and persists a single low-stock alert.
func (s *restockService) Process(ctx context.Context, in ports.RestockAlertInput) error {
	isDup, err := s.dedup.IsDuplicate(ctx, in.ProductID)
	if err != nil {
		s.log.Warn().Err(err).Str("product_id", in.ProductID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("product_id", in.ProductID).Msg("duplicate restock alert skipped")
		return nil
	}

	// Mark before writing so a retry after a partial failure stays suppressed.
	if markErr := s.dedup.Mark(ctx, in.ProductID); markErr != nil {
		s.log.Warn().Err(markErr).Str("product_id", in.ProductID).Msg("failed to set dedup key")
	}

	alert := &domain.RestockAlert{
		ProductID:   in.ProductID,
		ProductName: in.ProductName,
		Remaining:   in.Remaining,
		Threshold:   in.Threshold,
		OccurredAt:  time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, alert); err != nil {
		return fmt.Errorf("process restock alert: %w", err)
	}

	s.log.Info().
		Str("product_id", in.ProductID).
		Int("remaining", in.Remaining).
		Int("threshold", in.Threshold).
		Msg("restock alert recorded")

	return nil
}
