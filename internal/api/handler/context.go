package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pollhub/polling-api/internal/core/domain"
)

// currentUser extracts the account injected by the Auth middleware and
// fast-fails before any service call: its presence proves the guard ran.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get("user").(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
