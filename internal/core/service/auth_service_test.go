package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/domain"
	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/ports"
)

type stubStore struct {
	users map[string]*domain.User
	err   error
}

func newStubStore() *stubStore {
	return &stubStore{users: make(map[string]*domain.User)}
}

func (s *stubStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *stubStore) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if _, exists := s.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	clone := *user
	s.users[user.Email] = &clone
	out := clone
	return &out, nil
}

type stubRevocations struct {
	revoked map[string]bool
	err     error
}

func newStubRevocations() *stubRevocations {
	return &stubRevocations{revoked: make(map[string]bool)}
}

func (r *stubRevocations) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	if r.err != nil {
		return r.err
	}
	r.revoked[tokenID] = true
	return nil
}

func (r *stubRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	return r.revoked[tokenID], nil
}

func newTestAuthService(store *stubStore, revocations *stubRevocations) (*AuthService, *TokenService) {
	tokens := NewTokenService("secret", time.Hour)
	hasher := NewBcryptHasher(bcrypt.MinCost)
	return NewAuthService(store, hasher, tokens, revocations, zerolog.Nop()), tokens
}

func seedUser(t *testing.T, store *stubStore, email, password string, role domain.Role) {
	t.Helper()
	hasher := NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	store.users[email] = &domain.User{
		ID:           "u-" + email,
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	store := newStubStore()
	seedUser(t, store, "manager@store1.com", "password123", domain.RoleStoreManager)
	svc, tokens := newTestAuthService(store, newStubRevocations())

	raw, profile, err := svc.Login(context.Background(), "manager@store1.com", "password123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if profile == nil || profile.Role != domain.RoleStoreManager {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if profile.RoleDisplay != "Store Manager" {
		t.Fatalf("unexpected roleDisplay: %s", profile.RoleDisplay)
	}

	claims, err := tokens.Validate(raw)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.Role != domain.RoleStoreManager {
		t.Fatalf("token role %s does not match stored role", claims.Role)
	}
	if claims.Email() != "manager@store1.com" {
		t.Fatalf("unexpected token subject: %s", claims.Email())
	}
}

func TestAuthService_Login_NonEnumeration(t *testing.T) {
	store := newStubStore()
	seedUser(t, store, "customer@email.com", "password123", domain.RoleCustomer)
	svc, _ := newTestAuthService(store, newStubRevocations())

	_, _, wrongPass := svc.Login(context.Background(), "customer@email.com", "nope")
	_, _, unknown := svc.Login(context.Background(), "ghost@example.com", "nope")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknown)
	}
}

func TestAuthService_Login_StoreUnavailable(t *testing.T) {
	store := newStubStore()
	store.err = errors.New("connection reset")
	svc, _ := newTestAuthService(store, newStubRevocations())

	_, _, err := svc.Login(context.Background(), "customer@email.com", "password123")
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	store := newStubStore()
	svc, _ := newTestAuthService(store, newStubRevocations())

	profile, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "New Vendor",
		Email:    "new@vendor.com",
		Password: "hunter22",
		Role:     "vendor",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if profile.Role != domain.RoleVendor {
		t.Fatalf("unexpected role: %s", profile.Role)
	}
	if profile.ID == "" {
		t.Fatalf("expected generated id")
	}

	stored := store.users["new@vendor.com"]
	if stored == nil {
		t.Fatalf("user not persisted")
	}
	if stored.PasswordHash == "hunter22" {
		t.Fatalf("password stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	store := newStubStore()
	seedUser(t, store, "taken@example.com", "pw123456", domain.RoleCustomer)
	svc, _ := newTestAuthService(store, newStubRevocations())

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Dup",
		Email:    "taken@example.com",
		Password: "pw123456",
		Role:     "customer",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Register_RolePolicy(t *testing.T) {
	svc, _ := newTestAuthService(newStubStore(), newStubRevocations())

	cases := []string{"", "admin", "ghost", "saas_admin"}
	for _, role := range cases {
		_, err := svc.Register(context.Background(), ports.RegisterInput{
			Name:     "X",
			Email:    "x@example.com",
			Password: "pw123456",
			Role:     role,
		})
		if !errors.Is(err, domain.ErrInvalidRole) {
			t.Fatalf("role %q: expected ErrInvalidRole, got %v", role, err)
		}
	}
}

func TestAuthService_Refresh(t *testing.T) {
	store := newStubStore()
	seedUser(t, store, "customer@email.com", "password123", domain.RoleCustomer)
	svc, tokens := newTestAuthService(store, newStubRevocations())

	raw, _, err := svc.Login(context.Background(), "customer@email.com", "password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	next, err := svc.Refresh(context.Background(), raw)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if _, err := tokens.Validate(next); err != nil {
		t.Fatalf("refreshed token invalid: %v", err)
	}
}

func TestAuthService_Refresh_RevokedToken(t *testing.T) {
	store := newStubStore()
	seedUser(t, store, "customer@email.com", "password123", domain.RoleCustomer)
	revocations := newStubRevocations()
	svc, tokens := newTestAuthService(store, revocations)

	raw, _, err := svc.Login(context.Background(), "customer@email.com", "password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	claims, err := tokens.Validate(raw)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	revocations.revoked[claims.TokenID()] = true

	if _, err := svc.Refresh(context.Background(), raw); !errors.Is(err, domain.ErrTokenRevoked) {
		t.Fatalf("expected ErrTokenRevoked, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	store := newStubStore()
	seedUser(t, store, "customer@email.com", "password123", domain.RoleCustomer)
	revocations := newStubRevocations()
	svc, tokens := newTestAuthService(store, revocations)

	raw, _, err := svc.Login(context.Background(), "customer@email.com", "password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if !svc.Logout(context.Background(), raw) {
		t.Fatalf("expected logout to revoke the token")
	}

	claims, err := tokens.Validate(raw)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if !revocations.revoked[claims.TokenID()] {
		t.Fatalf("token id not recorded as revoked")
	}
}

func TestAuthService_Logout_NoToken(t *testing.T) {
	svc, _ := newTestAuthService(newStubStore(), newStubRevocations())

	if svc.Logout(context.Background(), "") {
		t.Fatalf("logout without a token must not revoke anything")
	}
	if svc.Logout(context.Background(), "garbage") {
		t.Fatalf("logout with an invalid token must not revoke anything")
	}
}

func TestAuthService_ForgotPassword_Uniform(t *testing.T) {
	store := newStubStore()
	seedUser(t, store, "customer@email.com", "password123", domain.RoleCustomer)
	svc, _ := newTestAuthService(store, newStubRevocations())

	known := svc.ForgotPassword(context.Background(), "customer@email.com")
	unknown := svc.ForgotPassword(context.Background(), "ghost@example.com")
	if known != unknown {
		t.Fatalf("reset acknowledgment must not reveal account existence")
	}
	if known == "" {
		t.Fatalf("expected an acknowledgment message")
	}
}
