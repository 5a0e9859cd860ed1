package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/api/metrics"
	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/domain"
	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/ports"
)

// Context keys set by the Auth middleware for the duration of a request.
const (
	CtxIdentity = "identity"
	CtxClaims   = "claims"
	CtxRole     = "role"
)

const storeLookupTimeout = 3 * time.Second

// BearerToken extracts the credential from the standard Authorization header.
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// Auth is the request guard: it validates the bearer token, rejects revoked
// tokens, resolves the subject against the credential store and injects the
// identity into the request context. Why a token failed is recorded in logs
// and metrics only; callers see a uniform 401.
func Auth(tokens ports.TokenService, store ports.CredentialStore, revocations ports.RevocationList, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := BearerToken(c.Request())
			if !ok {
				metrics.TokenValidationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid authorization header")
			}

			claims, err := tokens.Validate(raw)
			if err != nil {
				reason := tokenFailureReason(err)
				metrics.TokenValidationsTotal.WithLabelValues(reason).Inc()
				log.Debug().Str("reason", reason).Str("path", c.Path()).Msg("token rejected")
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			if isRevoked(c.Request().Context(), revocations, claims.TokenID(), log) {
				metrics.TokenValidationsTotal.WithLabelValues("revoked").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			// A deleted user presenting a still-valid token is unauthenticated,
			// not "not found": 404 here would confirm account existence.
			user, err := lookupSubject(c.Request().Context(), store, claims.Email())
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.TokenValidationsTotal.WithLabelValues("unknown_subject").Inc()
					log.Debug().Str("path", c.Path()).Msg("token subject no longer exists")
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
				}
				metrics.TokenValidationsTotal.WithLabelValues("store_unavailable").Inc()
				log.Error().Err(err).Msg("credential store lookup failed during auth")
				return domain.ErrStoreUnavailable
			}

			metrics.TokenValidationsTotal.WithLabelValues("ok").Inc()

			c.Set(CtxIdentity, user)
			c.Set(CtxClaims, claims)
			c.Set(CtxRole, user.Role)

			return next(c)
		}
	}
}

func lookupSubject(ctx context.Context, store ports.CredentialStore, email string) (*domain.User, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, storeLookupTimeout)
	defer cancel()
	return store.FindByEmail(lookupCtx, email)
}

// isRevoked fails open: tokens still expire on their own, and a Redis outage
// must not lock every user out.
func isRevoked(ctx context.Context, revocations ports.RevocationList, tokenID string, log zerolog.Logger) bool {
	if tokenID == "" {
		return false
	}
	revoked, err := revocations.IsRevoked(ctx, tokenID)
	if err != nil {
		log.Warn().Err(err).Msg("revocation check failed, allowing token")
		return false
	}
	return revoked
}

func tokenFailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenSignature):
		return "invalid_signature"
	default:
		return "malformed"
	}
}
