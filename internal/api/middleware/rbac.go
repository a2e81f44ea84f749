package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
)

// RBAC enforces role-based access control. A principal whose role is outside
// the permitted set gets domain.ErrForbidden, which the central error handler
// renders as 403, never 401.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if !domain.RoleAllowed(role, allowedRoles...) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
