package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/service"
)

// StatusHandler records and lists client heartbeat checks.
type StatusHandler struct {
	status *service.StatusService
}

func NewStatusHandler(status *service.StatusService) *StatusHandler {
	return &StatusHandler{status: status}
}

type statusCheckRequest struct {
	ClientName string `json:"client_name" validate:"required"`
}

// Create handles POST /status.
func (h *StatusHandler) Create(c echo.Context) error {
	var req statusCheckRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	check, err := h.status.Create(c.Request().Context(), req.ClientName)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, check)
}

// List handles GET /status.
func (h *StatusHandler) List(c echo.Context) error {
	checks, err := h.status.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, checks)
}
