package domain

import "time"

// TokenIssuer issues access tokens for API clients.
type TokenIssuer interface {
	Issue(clientID string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the client it was issued to.
// It returns ErrUnauthorized for tokens that are malformed, forged or expired.
type TokenVerifier interface {
	Verify(token string) (clientID string, err error)
}
