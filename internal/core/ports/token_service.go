package ports

// TokenClaims is the identity carried by a validated token.
type TokenClaims struct {
	Subject string // username
	Role    string
}

// TokenService issues and validates signed identity tokens. Issue embeds the
// subject and an absolute expiry (issue time plus a fixed TTL) and signs with
// a process-wide secret loaded once from configuration. Validate fails with
// domain.ErrTokenMalformed, domain.ErrTokenSignatureInvalid or
// domain.ErrTokenExpired; on success it returns the embedded claims.
// Stateless: no revocation list.
type TokenService interface {
	Issue(subject, role string) (string, error)
	Validate(token string) (*TokenClaims, error)
}
