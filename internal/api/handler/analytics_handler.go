package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/ports"
)

// AnalyticsHandler exposes the platform analytics series. All routes are
// gated to the SaaS admin role by the router.
type AnalyticsHandler struct {
	analytics ports.AnalyticsService
}

func NewAnalyticsHandler(analytics ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Revenue handles GET /analytics/revenue?days=30.
func (h *AnalyticsHandler) Revenue(c echo.Context) error {
	days, err := rangeParam(c, "days")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.analytics.Revenue(days))
}

// UserBehavior handles GET /analytics/user-behavior?days=30.
func (h *AnalyticsHandler) UserBehavior(c echo.Context) error {
	days, err := rangeParam(c, "days")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.analytics.UserBehavior(days))
}

// Performance handles GET /analytics/performance?hours=24.
func (h *AnalyticsHandler) Performance(c echo.Context) error {
	hours, err := rangeParam(c, "hours")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.analytics.Performance(hours))
}

// Summary handles GET /analytics/summary.
func (h *AnalyticsHandler) Summary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.analytics.Summary())
}

// TenantPerformance handles GET /analytics/tenant-performance.
func (h *AnalyticsHandler) TenantPerformance(c echo.Context) error {
	return c.JSON(http.StatusOK, h.analytics.TenantPerformance())
}

// Geographic handles GET /analytics/geographic.
func (h *AnalyticsHandler) Geographic(c echo.Context) error {
	return c.JSON(http.StatusOK, h.analytics.Geographic())
}

// rangeParam parses an optional positive integer query parameter. Zero means
// "use the service default".
func rangeParam(c echo.Context, name string) (int, error) {
	val := c.QueryParam(name)
	if val == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return n, nil
}
