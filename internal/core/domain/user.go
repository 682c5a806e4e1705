package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRole reports whether s is one of the known roles.
func ValidRole(s string) bool {
	return s == RoleUser || s == RoleAdmin
}

// User models an authenticated actor. The password hash is opaque to every
// layer except the PasswordHasher implementation.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
