package service

import "time"

// TokenClaims is what the client can read from a bearer token without the signing key.
type TokenClaims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time // zero when the token carries no exp claim
}

// TokenInspector reads bearer tokens locally. It never verifies signatures;
// the identity-check endpoint remains the authority.
type TokenInspector interface {
	// Inspect parses the token's claims. Opaque (non-JWT) tokens return an error.
	Inspect(token string) (*TokenClaims, error)

	// Expired reports whether the token is a JWT whose exp claim is in the past.
	// Tokens that cannot be inspected are not considered expired.
	Expired(token string, now time.Time) bool
}
