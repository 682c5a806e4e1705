package ports

import (
	"context"

	"github.com/storemgmt/store-api/internal/core/domain"
)

// RegisterInput carries the data needed to create a new user account.
type RegisterInput struct {
	Username string
	Password string
	Role     string
}

// CredentialsInput carries a username/password pair for authentication.
type CredentialsInput struct {
	Username string
	Password string
}

// AuthResult is returned on successful registration or authentication.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}

// AuthService defines the registration and authentication use cases.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Authenticate(ctx context.Context, in CredentialsInput) (*AuthResult, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// CredentialVerifier checks a username/password pair against the stored
// credential. Unknown username and wrong password are indistinguishable: both
// fail with domain.ErrInvalidCredentials so callers cannot enumerate users.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) error
}

// PasswordHasher is the opaque one-way hashing capability. Stored hashes are
// salted and not reproducible across calls; comparison always goes through
// Verify, never hash equality.
type PasswordHasher interface {
	Hash(raw string) (string, error)
	Verify(raw, hash string) bool
}
