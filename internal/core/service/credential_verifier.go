package service

import (
	"context"
	"errors"

	"github.com/storemgmt/store-api/internal/core/domain"
	"github.com/storemgmt/store-api/internal/core/ports"
)

// CredentialVerifier checks a raw password against the stored hash. Unknown
// usernames and wrong passwords both fail with ErrInvalidCredentials so a
// caller cannot tell registered usernames apart from unregistered ones.
type CredentialVerifier struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
}

func NewCredentialVerifier(repo ports.UserRepository, hasher ports.PasswordHasher) *CredentialVerifier {
	return &CredentialVerifier{repo: repo, hasher: hasher}
}

func (v *CredentialVerifier) Verify(ctx context.Context, username, password string) error {
	user, err := v.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidCredentials
		}
		return err
	}
	if !v.hasher.Verify(password, user.PasswordHash) {
		return domain.ErrInvalidCredentials
	}
	return nil
}
