package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware and
// fast-fails before any service call: a non-empty role proves the middleware
// ran on this route.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	identity, _ := c.Get("identity").(string)
	return domain.Principal{Identity: identity, Role: role}, nil
}
