package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/storemgmt/store-api/internal/core/domain"
	"github.com/storemgmt/store-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn     func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error)
	authenticateFn func(ctx context.Context, in ports.CredentialsInput) (*ports.AuthResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Authenticate(ctx context.Context, in ports.CredentialsInput) (*ports.AuthResult, error) {
	return s.authenticateFn(ctx, in)
}

func (s *stubAuthService) UsernameExists(context.Context, string) (bool, error) {
	return false, nil
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
			if in.Username != "alice" || in.Role != domain.RoleUser {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.AuthResult{
				AccessToken: "token-123",
				User:        &domain.User{Username: in.Username, Role: in.Role},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/auth/register",
		`{"username":"alice","password":"secret-pass","role":"user"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "token-123" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.AuthResult, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/auth/register",
		`{"username":"bob","password":"secret-pass","role":"user"}`)

	err := handler.Register(c)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidRole(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.AuthResult, error) {
			t.Fatalf("service must not be called on validation failure")
			return nil, nil
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/auth/register",
		`{"username":"bob","password":"secret-pass","role":"root"}`)

	err := handler.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Authenticate_Success(t *testing.T) {
	stub := &stubAuthService{
		authenticateFn: func(_ context.Context, in ports.CredentialsInput) (*ports.AuthResult, error) {
			if in.Username != "carol" {
				t.Fatalf("unexpected username: %s", in.Username)
			}
			return &ports.AuthResult{
				AccessToken: "token-456",
				User:        &domain.User{Username: in.Username, Role: domain.RoleAdmin},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/auth/authenticate",
		`{"username":"carol","password":"s3cret"}`)

	if err := handler.Authenticate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "token-456" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Authenticate_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		authenticateFn: func(context.Context, ports.CredentialsInput) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/auth/authenticate",
		`{"username":"carol","password":"wrong"}`)

	err := handler.Authenticate(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Authenticate_MissingFields(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{
		authenticateFn: func(context.Context, ports.CredentialsInput) (*ports.AuthResult, error) {
			t.Fatalf("service must not be called on validation failure")
			return nil, nil
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/auth/authenticate", `{"username":"carol"}`)

	err := handler.Authenticate(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}
