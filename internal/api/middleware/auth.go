package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pollhub/polling-api/internal/core/domain"
	"github.com/pollhub/polling-api/internal/core/ports"
	"github.com/pollhub/polling-api/internal/token"
)

// userContextKey is where the guard stores the resolved *domain.User.
const userContextKey = "user"

// Auth is the access guard for protected routes. Checks run in order and each
// one short-circuits: header presence, bearer shape, signature/expiry, live
// user lookup, active flag, lock state. The guard only reads account state;
// it never touches the failure counter.
func Auth(issuer *token.Issuer, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			userID, err := issuer.Verify(parts[1])
			if err != nil {
				if errors.Is(err, token.ErrExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				return err
			}

			if !user.Active {
				return echo.NewHTTPError(http.StatusUnauthorized, "account disabled")
			}
			if user.Locked(time.Now().UTC()) {
				return echo.NewHTTPError(http.StatusLocked, "account locked")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}
