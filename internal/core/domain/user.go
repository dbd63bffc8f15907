package domain

import "time"

// Role is the permission tier attached to a user. The set is closed; any other
// value in the database is a data-integrity fault, not a runtime branch.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleModerator || r == RoleAdmin
}

// User models a registered account and its security state.
//
// PasswordHash, the failure counter, and the lock expiry are internal state
// and are never serialized into API responses.
type User struct {
	ID                  string     `json:"id"`
	Handle              string     `json:"handle"`
	Email               string     `json:"email"`
	PasswordHash        string     `json:"-"`
	Role                Role       `json:"role"`
	Active              bool       `json:"active"`
	LastLogin           *time.Time `json:"last_login,omitempty"`
	FailedLoginAttempts int        `json:"-"`
	LockUntil           *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// Locked reports whether the account is locked at the given instant.
// Derived from LockUntil on every read, never stored.
func (u *User) Locked(now time.Time) bool {
	return u.LockUntil != nil && u.LockUntil.After(now)
}
