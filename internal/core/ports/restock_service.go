package ports

import (
	"context"

	"github.com/storemgmt/store-api/internal/core/domain"
)

// RestockAlertInput is the DTO passed from the inventory service to the
// restock pipeline when a purchase leaves a product at or below the
// low-stock threshold.
type RestockAlertInput struct {
	ProductID   string
	ProductName string
	Remaining   int
	Threshold   int
}

// RestockService processes low-stock alerts.
type RestockService interface {
	Process(ctx context.Context, in RestockAlertInput) error
}

// RestockRepository persists restock requests.
type RestockRepository interface {
	Insert(ctx context.Context, alert *domain.RestockAlert) error
}
