// Package auth reads bearer tokens on the client side.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"solarsavers/internal/domain/service"
)

// jwtInspector decodes JWT claims without a signing key.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{parser: jwt.NewParser()}
}

// Inspect returns the subject, role and expiry of a JWT.
func (i *jwtInspector) Inspect(token string) (*service.TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	result := &service.TokenClaims{}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "read sub claim")
	}
	result.Subject = sub

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, errors.Wrap(err, "read exp claim")
	}
	if exp != nil {
		result.ExpiresAt = exp.Time
	}

	result.Role = roleClaim(claims)

	return result, nil
}

// Expired reports whether the JWT's exp claim is at or before now.
func (i *jwtInspector) Expired(token string, now time.Time) bool {
	claims, err := i.Inspect(token)
	if err != nil || claims.ExpiresAt.IsZero() {
		return false
	}

	return !now.Before(claims.ExpiresAt)
}

// roleClaim accepts both "role": "admin" and "roles": ["admin"].
func roleClaim(claims jwt.MapClaims) string {
	if role, ok := claims["role"].(string); ok {
		return role
	}
	if roles, ok := claims["roles"].([]any); ok && len(roles) > 0 {
		if role, ok := roles[0].(string); ok {
			return role
		}
	}

	return ""
}
