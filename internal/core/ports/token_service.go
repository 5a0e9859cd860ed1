package ports

import (
	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/domain"
)

// TokenService issues and validates signed, time-bounded bearer tokens.
// All operations are pure computations over the token and the server-held
// secret; nothing is persisted.
type TokenService interface {
	// Issue mints a token embedding the identity's email, role and a fresh
	// token id, valid for the configured TTL.
	Issue(user *domain.User) (string, *domain.AccessClaims, error)

	// Validate verifies signature first, then expiry. It fails with
	// domain.ErrTokenSignature, ErrTokenExpired or ErrTokenMalformed; claims
	// are only returned after the signature check passed.
	Validate(raw string) (*domain.AccessClaims, error)

	// Refresh re-issues a token with a fresh expiry for a currently-valid
	// token. An expired or otherwise invalid token cannot be refreshed.
	Refresh(raw string) (string, *domain.AccessClaims, error)
}
