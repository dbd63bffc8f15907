package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pollhub/polling-api/internal/core/domain"
)

// RBAC permits the request iff the authenticated user's role is one of
// allowedRoles. It must run after Auth; a missing context user means the
// guard did not run and the request is rejected outright.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(userContextKey).(*domain.User)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if _, ok := allowed[user.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
