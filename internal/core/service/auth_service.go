package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/storemgmt/store-api/internal/core/domain"
	"github.com/storemgmt/store-api/internal/core/ports"
)

// AuthService implements registration and authentication.
type AuthService struct {
	repo     ports.UserRepository
	hasher   ports.PasswordHasher
	verifier ports.CredentialVerifier
	tokens   ports.TokenService
	logger   zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	hasher ports.PasswordHasher,
	verifier ports.CredentialVerifier,
	tokens ports.TokenService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		repo:     repo,
		hasher:   hasher,
		verifier: verifier,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates a new user account and issues a token for it.
//
// The exists-check is a courtesy pre-check only: two concurrent
// registrations of the same username can both pass it, and the repository's
// uniqueness constraint is what actually rejects the loser of the race.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	if in.Username == "" || in.Password == "" || !domain.ValidRole(in.Role) {
		return nil, domain.ErrInvalidCredentials
	}

	exists, err := s.repo.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created.Username, created.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")

	return &ports.AuthResult{AccessToken: token, User: created}, nil
}

// Authenticate verifies the supplied credentials and issues a token.
// A record lookup miss after successful verification is a store
// inconsistency, surfaced as ErrUserRecordMissing rather than
// ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, in ports.CredentialsInput) (*ports.AuthResult, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.verifier.Verify(ctx, in.Username, in.Password); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Error().Str("username", in.Username).Msg("user record missing after credential verification")
			return nil, domain.ErrUserRecordMissing
		}
		return nil, err
	}

	token, err := s.tokens.Issue(user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	return &ports.AuthResult{AccessToken: token, User: user}, nil
}

// UsernameExists is a read-through query with no side effects.
func (s *AuthService) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.repo.ExistsByUsername(ctx, username)
}
