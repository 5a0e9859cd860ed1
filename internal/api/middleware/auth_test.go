package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/domain"
	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/service"
)

type stubStore struct {
	users map[string]*domain.User
	err   error
}

func (s *stubStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *stubStore) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

type stubRevocations struct {
	revoked map[string]bool
	err     error
}

func (r *stubRevocations) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	r.revoked[tokenID] = true
	return nil
}

func (r *stubRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	return r.revoked[tokenID], nil
}

func authFixture() (*service.TokenService, *stubStore, *stubRevocations, echo.MiddlewareFunc) {
	tokens := service.NewTokenService("secret", time.Hour)
	store := &stubStore{users: map[string]*domain.User{
		"delivery@fast.com": {
			ID:    "u-5",
			Name:  "Carlos Rodriguez",
			Email: "delivery@fast.com",
			Role:  domain.RoleDeliveryPartner,
		},
	}}
	revocations := &stubRevocations{revoked: make(map[string]bool)}
	mw := Auth(tokens, store, revocations, zerolog.Nop())
	return tokens, store, revocations, mw
}

func requestWithToken(e *echo.Echo, token string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	tokens, _, _, mw := authFixture()

	raw, _, err := tokens.Issue(&domain.User{Email: "delivery@fast.com", Role: domain.RoleDeliveryPartner})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, rec := requestWithToken(e, raw)

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		user, _ := c.Get(CtxIdentity).(*domain.User)
		if user == nil || user.Email != "delivery@fast.com" {
			t.Fatalf("identity not injected: %+v", user)
		}
		role, _ := c.Get(CtxRole).(domain.Role)
		if role != domain.RoleDeliveryPartner {
			t.Fatalf("role not injected: %v", role)
		}
		claims, _ := c.Get(CtxClaims).(*domain.AccessClaims)
		if claims == nil || claims.TokenID() == "" {
			t.Fatalf("claims not injected")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	_, _, _, mw := authFixture()

	c, _ := requestWithToken(e, "")
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_WrongScheme(t *testing.T) {
	e := echo.New()
	_, _, _, mw := authFixture()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_ExpiredToken(t *testing.T) {
	e := echo.New()
	_, _, _, mw := authFixture()

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "delivery@fast.com",
		"role": "delivery_partner",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	c, _ := requestWithToken(e, raw)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err = handler(c)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_RevokedToken(t *testing.T) {
	e := echo.New()
	tokens, _, revocations, mw := authFixture()

	raw, claims, err := tokens.Issue(&domain.User{Email: "delivery@fast.com", Role: domain.RoleDeliveryPartner})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	revocations.revoked[claims.TokenID()] = true

	c, _ := requestWithToken(e, raw)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err = handler(c)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_RevocationCheckFailsOpen(t *testing.T) {
	e := echo.New()
	tokens, _, revocations, mw := authFixture()
	revocations.err = errors.New("redis down")

	raw, _, err := tokens.Issue(&domain.User{Email: "delivery@fast.com", Role: domain.RoleDeliveryPartner})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, rec := requestWithToken(e, raw)
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("expected fail-open on revocation list outage, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_DeletedUser(t *testing.T) {
	e := echo.New()
	tokens, store, _, mw := authFixture()

	raw, _, err := tokens.Issue(&domain.User{Email: "delivery@fast.com", Role: domain.RoleDeliveryPartner})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	delete(store.users, "delivery@fast.com")

	c, _ := requestWithToken(e, raw)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	// A valid token for a deleted user is unauthenticated, not "not found".
	err = handler(c)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_StoreUnavailable(t *testing.T) {
	e := echo.New()
	tokens, store, _, mw := authFixture()
	store.err = errors.New("connection reset")

	raw, _, err := tokens.Issue(&domain.User{Email: "delivery@fast.com", Role: domain.RoleDeliveryPartner})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, _ := requestWithToken(e, raw)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	if he.Code != want {
		t.Fatalf("expected %d, got %d", want, he.Code)
	}
}
