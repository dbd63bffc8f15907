package ports

import (
	"context"

	"github.com/pollhub/polling-api/internal/core/domain"
)

type AuthService interface {
	// Register creates an account and returns a bearer token for it.
	Register(ctx context.Context, handle, password, email string) (string, *domain.User, error)
	// Login verifies credentials against the lockout state machine and
	// returns a bearer token on success.
	Login(ctx context.Context, handle, password string) (string, *domain.User, error)
}
