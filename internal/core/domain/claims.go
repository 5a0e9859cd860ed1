package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims is the verified payload of an access token. Subject carries
// the identity's email, ID the token's jti used for server-side revocation.
type AccessClaims struct {
	Role Role   `json:"role"`
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Email returns the token subject.
func (c *AccessClaims) Email() string {
	return c.Subject
}

// TokenID returns the jti, empty for tokens minted before revocation support.
func (c *AccessClaims) TokenID() string {
	return c.ID
}

// RemainingValidity reports how long the token stays valid from now. Zero or
// negative means already expired.
func (c *AccessClaims) RemainingValidity(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	return c.ExpiresAt.Time.Sub(now)
}
