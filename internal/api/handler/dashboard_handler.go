package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/api/metrics"
	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/domain"
)

// DashboardHandler serves the per-role dashboard views. Each dashboard is an
// exclusive view: the policy admits exactly the role named by the URL slug.
type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

type dashboardResponse struct {
	Role        domain.Role     `json:"role"`
	RoleDisplay string          `json:"roleDisplay"`
	User        *domain.Profile `json:"user"`
	Widgets     map[string]any  `json:"widgets"`
}

// View handles GET /dashboard/:slug.
//
// @Summary      Role dashboard
// @Tags         dashboard
// @Produce      json
// @Param        slug  path      string  true  "Dashboard role slug"
// @Success      200   {object}  dashboardResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /dashboard/{slug} [get]
// @Security     BearerAuth
func (h *DashboardHandler) View(c echo.Context) error {
	user, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	slug := c.Param("slug")
	allowed, ok := domain.DashboardRoles(slug)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown dashboard")
	}

	permitted := false
	for _, role := range allowed {
		if user.Role == role {
			permitted = true
			break
		}
	}
	if !permitted {
		metrics.RoleDenialsTotal.WithLabelValues(string(user.Role)).Inc()
		return domain.ErrForbidden
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		Role:        user.Role,
		RoleDisplay: user.Role.Display(),
		User:        user.PublicProfile(),
		Widgets:     dashboardWidgets(user),
	})
}

// dashboardWidgets assembles the demo summary tiles each portal renders.
func dashboardWidgets(user *domain.User) map[string]any {
	switch user.Role {
	case domain.RoleSaasAdmin:
		return map[string]any{
			"tenants":         48,
			"monthly_revenue": 1250000.0,
			"open_incidents":  3,
			"system_uptime":   99.97,
		}
	case domain.RoleSuperAdmin:
		return map[string]any{
			"tenant":        user.Tenant,
			"stores":        12,
			"staff":         86,
			"orders_today":  1430,
			"revenue_today": 58200.0,
		}
	case domain.RoleStoreManager:
		return map[string]any{
			"store":           user.Store,
			"orders_pending":  24,
			"low_stock_items": 7,
			"staff_on_shift":  9,
		}
	case domain.RoleVendor:
		return map[string]any{
			"business":        user.Business,
			"active_listings": 132,
			"orders_today":    87,
			"payout_pending":  4310.50,
		}
	case domain.RoleDeliveryPartner:
		return map[string]any{
			"assignments_active": 2,
			"deliveries_today":   11,
			"earnings_today":     96.75,
			"on_time_rate":       97.2,
		}
	case domain.RoleCustomer:
		return map[string]any{
			"open_orders":     1,
			"loyalty_points":  340,
			"saved_addresses": 3,
		}
	case domain.RoleSupportStaff:
		return map[string]any{
			"tickets_open":       17,
			"tickets_escalated":  2,
			"avg_response_mins":  6.4,
			"satisfaction_score": 4.6,
		}
	default:
		return map[string]any{}
	}
}
