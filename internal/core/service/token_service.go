package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/storemgmt/store-api/internal/core/domain"
	"github.com/storemgmt/store-api/internal/core/ports"
)

// TokenService issues and validates HS256-signed JWTs carrying the username
// as subject and the user's role as a custom claim.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token expiring at issue time plus the configured TTL.
func (s *TokenService) Issue(subject, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token, returning the embedded claims.
// Failures map onto the domain token error taxonomy.
func (s *TokenService) Validate(token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrTokenSignatureInvalid
		default:
			return nil, domain.ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenSignatureInvalid
	}

	subject, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if subject == "" {
		return nil, domain.ErrTokenMalformed
	}

	return &ports.TokenClaims{Subject: subject, Role: role}, nil
}
