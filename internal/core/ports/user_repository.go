package ports

import (
	"context"

	"github.com/storemgmt/store-api/internal/core/domain"
)

// UserRepository defines persistence operations for user identities.
//
// The store, not the service layer, is the final arbiter of username
// uniqueness: Create must reject a duplicate username with
// domain.ErrUserExists even when a service-level pre-check raced past.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
