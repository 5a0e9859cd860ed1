package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/api/middleware"
	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. Its
// presence proves the guard ran; a handler reached without it is a wiring
// bug surfaced as 401 rather than a panic.
func ctxIdentity(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.CtxIdentity).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
