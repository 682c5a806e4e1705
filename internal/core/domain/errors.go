package domain

import "errors"

// User / credential errors.
var (
	ErrUserExists         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	// ErrUserRecordMissing signals that credential verification succeeded but
	// the subsequent record lookup failed. This is a store inconsistency, not
	// bad input, and is surfaced as a server error.
	ErrUserRecordMissing = errors.New("user record missing after verification")
)

// Token errors. Distinguished internally for diagnostics; the boundary
// collapses all three to 401.
var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)

// Catalog errors.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrNoProducts      = errors.New("no products available")
	ErrOutOfStock      = errors.New("product out of stock")
)
