package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/api/metrics"
	"github.com/SnigdhaDeepgrid/Nkiosk-superapp/internal/core/domain"
)

// RBAC enforces role-based access control. The check is exact-match against
// the allow-set: administrative roles get no implicit access. Must run after
// Auth has resolved the identity.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(domain.Role)
			if _, ok := allowed[role]; !ok {
				metrics.RoleDenialsTotal.WithLabelValues(string(role)).Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
