package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/domain"
)

const issuerName = "nkiosk-superapp"

// TokenService mints and verifies HS256 access tokens. It holds the
// process-wide signing secret, injected once at startup and never mutated,
// so every operation is a pure computation over request-local data.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue mints a token for the given identity. The role is fixed at issuance
// and rides along in every token until re-authentication.
func (s *TokenService) Issue(user *domain.User) (string, *domain.AccessClaims, error) {
	now := s.now().UTC()
	claims := &domain.AccessClaims{
		Role: user.Role,
		Name: user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuerName,
			Subject:   user.Email,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, err
	}
	return raw, claims, nil
}

// Validate verifies the signature and then the expiry. Claims are never
// trusted before the signature check passed; a token is already invalid at
// exactly its expiry instant.
func (s *TokenService) Validate(raw string) (*domain.AccessClaims, error) {
	claims := &domain.AccessClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, mapTokenError(err)
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenMalformed
	}
	if !claims.Role.Valid() {
		return nil, domain.ErrTokenMalformed
	}
	return claims, nil
}

// Refresh re-issues a token with a fresh expiry for an already-validated
// identity, without re-presenting the password. Only a currently-valid token
// may be refreshed.
func (s *TokenService) Refresh(raw string) (string, *domain.AccessClaims, error) {
	claims, err := s.Validate(raw)
	if err != nil {
		return "", nil, err
	}

	now := s.now().UTC()
	exp := now.Add(s.ttl)
	if claims.ExpiresAt != nil && !exp.After(claims.ExpiresAt.Time) {
		// exp has second precision on the wire; keep the refreshed token
		// strictly longer-lived than the one it replaces.
		exp = claims.ExpiresAt.Time.Add(time.Second)
	}

	next := &domain.AccessClaims{
		Role: claims.Role,
		Name: claims.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuerName,
			Subject:   claims.Subject,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, next).SignedString(s.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, next, nil
}

// mapTokenError collapses jwt library failures into the domain taxonomy so
// callers can log the reason without depending on the jwt package.
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
		return domain.ErrTokenSignature
	case errors.Is(err, jwt.ErrTokenMalformed):
		return domain.ErrTokenMalformed
	default:
		return domain.ErrTokenMalformed
	}
}
