package ports

import (
	"context"
	"time"

	"github.com/pollhub/polling-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
//
// The three login-state mutators each issue a single document update so the
// failure counter and lock expiry can never be observed half-written, and
// concurrent failed attempts for the same user do not lose increments.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByHandle(ctx context.Context, handle string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)

	// RecordLoginFailure increments the failure counter atomically and, when
	// the new count reaches threshold, sets the lock expiry to lockUntil in
	// the same update.
	RecordLoginFailure(ctx context.Context, id string, threshold int, lockUntil time.Time) error

	// ResetLoginFailures overwrites the counter and clears any lock. Used when
	// a failed attempt arrives after a lock has expired: that attempt counts
	// as the first of a fresh window.
	ResetLoginFailures(ctx context.Context, id string, count int) error

	// RecordLoginSuccess zeroes the counter, clears the lock, and stamps the
	// last-login time.
	RecordLoginSuccess(ctx context.Context, id string, at time.Time) error
}
