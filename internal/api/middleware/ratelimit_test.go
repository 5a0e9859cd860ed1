package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestLoginRateLimit_AllowsWithinBurst(t *testing.T) {
	e := echo.New()
	mw := LoginRateLimit(1, 3)
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		rec := httptest.NewRecorder()
		if err := handler(e.NewContext(req, rec)); err != nil {
			t.Fatalf("request %d throttled unexpectedly: %v", i, err)
		}
	}
}

func TestLoginRateLimit_ThrottlesBeyondBurst(t *testing.T) {
	e := echo.New()
	mw := LoginRateLimit(1, 2)
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	var last error
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		rec := httptest.NewRecorder()
		last = handler(e.NewContext(req, rec))
	}

	var he *echo.HTTPError
	if !errors.As(last, &he) {
		t.Fatalf("expected echo.HTTPError, got %v", last)
	}
	if he.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", he.Code)
	}
}
