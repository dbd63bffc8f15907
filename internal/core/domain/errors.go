package domain

import "errors"

// Sentinel errors shared across services, repositories, and the HTTP error
// handler. The error handler owns the mapping to status codes.
var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials is returned identically for an unknown handle and
	// for a wrong password, so login responses never reveal user existence.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account locked")
	ErrAccountInactive    = errors.New("account disabled")
	ErrUserExists         = errors.New("handle or email already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrForbidden          = errors.New("access forbidden")

	ErrPollNotFound  = errors.New("poll not found")
	ErrInvalidOption = errors.New("invalid option index")
)
