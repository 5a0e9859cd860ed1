package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, body["error"]
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrTokenExpired, http.StatusUnauthorized, "invalid or expired token"},
		{domain.ErrTokenSignature, http.StatusUnauthorized, "invalid or expired token"},
		{domain.ErrTokenMalformed, http.StatusUnauthorized, "invalid or expired token"},
		{domain.ErrTokenRevoked, http.StatusUnauthorized, "invalid or expired token"},
		{domain.ErrUnauthenticated, http.StatusUnauthorized, "invalid or expired token"},
		{domain.ErrUserNotFound, http.StatusUnauthorized, "invalid or expired token"},
		{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{domain.ErrEmailTaken, http.StatusBadRequest, "email already registered"},
		{domain.ErrInvalidRole, http.StatusBadRequest, "invalid role"},
		{domain.ErrStoreUnavailable, http.StatusServiceUnavailable, "service temporarily unavailable"},
	}

	for _, tc := range cases {
		code, msg := renderError(t, tc.err)
		if code != tc.wantCode || msg != tc.wantMsg {
			t.Fatalf("%v: got (%d, %q), want (%d, %q)", tc.err, code, msg, tc.wantCode, tc.wantMsg)
		}
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("resolving identity: %w", domain.ErrUserNotFound)
	code, msg := renderError(t, wrapped)
	if code != http.StatusUnauthorized || msg != "invalid or expired token" {
		t.Fatalf("got (%d, %q)", code, msg)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusNotFound, "unknown dashboard"))
	if code != http.StatusNotFound || msg != "unknown dashboard" {
		t.Fatalf("got (%d, %q)", code, msg)
	}
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	code, msg := renderError(t, errors.New("mongo topology closed"))
	if code != http.StatusInternalServerError || msg != "internal server error" {
		t.Fatalf("got (%d, %q)", code, msg)
	}
	if msg == "mongo topology closed" {
		t.Fatalf("internal detail leaked to client")
	}
}
