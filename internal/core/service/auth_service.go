package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/domain"
	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/ports"
)

const defaultStoreTimeout = 3 * time.Second

// AuthService composes the credential store, password hasher, token service
// and revocation list into the login/register/refresh/logout flows.
type AuthService struct {
	store        ports.CredentialStore
	hasher       ports.PasswordHasher
	tokens       ports.TokenService
	revocations  ports.RevocationList
	logger       zerolog.Logger
	storeTimeout time.Duration
	now          func() time.Time
}

func NewAuthService(
	store ports.CredentialStore,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	revocations ports.RevocationList,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		store:        store,
		hasher:       hasher,
		tokens:       tokens,
		revocations:  revocations,
		logger:       logger,
		storeTimeout: defaultStoreTimeout,
		now:          time.Now,
	}
}

// Login verifies the credential pair and issues a token on success. Unknown
// email and wrong password produce the same error so responses cannot be
// used to probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Profile, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.findUser(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("login succeeded")
	return token, user.PublicProfile(), nil
}

// Register creates a new identity with a hashed credential. The platform
// admin role cannot be chosen on the public form.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Profile, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role, err := domain.ParseRole(input.Role)
	if err != nil || !role.SelfRegisterable() {
		return nil, domain.ErrInvalidRole
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		Phone:        input.Phone,
		CreatedAt:    s.now().UTC(),
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	created, err := s.store.Create(storeCtx, user)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		s.logger.Error().Err(err).Msg("credential store create failed")
		return nil, domain.ErrStoreUnavailable
	}

	return created.PublicProfile(), nil
}

// Refresh exchanges a currently-valid token for one with a fresh expiry.
// A revoked token cannot be refreshed even if its expiry has not passed.
func (s *AuthService) Refresh(ctx context.Context, raw string) (string, error) {
	claims, err := s.tokens.Validate(raw)
	if err != nil {
		return "", err
	}

	if revoked := s.isRevoked(ctx, claims.TokenID()); revoked {
		return "", domain.ErrTokenRevoked
	}

	next, _, err := s.tokens.Refresh(raw)
	if err != nil {
		return "", err
	}
	return next, nil
}

// Logout revokes the presented token's id for its remaining validity and
// reports whether a revocation happened. The operation never fails from the
// caller's perspective: an absent or invalid token means there is nothing to
// revoke.
func (s *AuthService) Logout(ctx context.Context, raw string) bool {
	if raw == "" {
		return false
	}

	claims, err := s.tokens.Validate(raw)
	if err != nil || claims.TokenID() == "" {
		return false
	}

	ttl := claims.RemainingValidity(s.now())
	if ttl <= 0 {
		return false
	}

	if err := s.revocations.Revoke(ctx, claims.TokenID(), ttl); err != nil {
		s.logger.Warn().Err(err).Str("token_id", claims.TokenID()).Msg("token revocation failed")
		return false
	}
	s.logger.Info().Str("email", claims.Email()).Msg("token revoked on logout")
	return true
}

// ForgotPassword acknowledges a reset request. The reply is identical
// whether or not the account exists; delivery of the reset itself is out of
// scope.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) string {
	s.logger.Info().Str("email", email).Msg("password reset requested")
	return "If an account exists for this email, reset instructions have been sent."
}

// findUser looks the identity up with a bounded timeout. A store dependency
// failure is surfaced as unavailable, never as "user not found".
func (s *AuthService) findUser(ctx context.Context, email string) (*domain.User, error) {
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	user, err := s.store.FindByEmail(storeCtx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		s.logger.Error().Err(err).Msg("credential store lookup failed")
		return nil, domain.ErrStoreUnavailable
	}
	return user, nil
}

// isRevoked consults the revocation list, failing open: losing the list must
// not lock out every holder of a still-valid token.
func (s *AuthService) isRevoked(ctx context.Context, tokenID string) bool {
	if tokenID == "" {
		return false
	}
	revoked, err := s.revocations.IsRevoked(ctx, tokenID)
	if err != nil {
		s.logger.Warn().Err(err).Str("token_id", tokenID).Msg("revocation check failed, allowing token")
		return false
	}
	return revoked
}
