package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pollhub/polling-api/internal/api/metrics"
	"github.com/pollhub/polling-api/internal/core/domain"
	"github.com/pollhub/polling-api/internal/core/ports"
	"github.com/pollhub/polling-api/internal/token"
)

const (
	maxFailedAttempts = 5
	lockDuration      = 2 * time.Hour

	minHandleLen   = 3
	maxHandleLen   = 30
	minPasswordLen = 6
)

// AuthService implements registration and the login lockout state machine.
type AuthService struct {
	repo   ports.UserRepository
	issuer *token.Issuer
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, issuer *token.Issuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, log: log}
}

// Register creates an account with the default role and returns a bearer
// token for it. The password is hashed before anything is persisted.
func (s *AuthService) Register(ctx context.Context, handle, password, email string) (string, *domain.User, error) {
	handle = strings.TrimSpace(handle)
	email = strings.ToLower(strings.TrimSpace(email))

	if len(handle) < minHandleLen || len(handle) > maxHandleLen {
		return "", nil, domain.ErrInvalidInput
	}
	if len(password) < minPasswordLen || email == "" {
		return "", nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Handle:       handle,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	tok, err := s.issuer.Issue(created.ID)
	if err != nil {
		return "", nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.log.Info().Str("handle", created.Handle).Msg("user registered")
	return tok, created, nil
}

// Login runs the credential check through the lockout state machine:
//
//   - unknown handle and wrong password both yield ErrInvalidCredentials
//   - an inactive account is rejected before the lock state is consulted
//   - a live lock is rejected before the password is compared
//   - a failed attempt after the lock expired starts a fresh window at 1
//   - the counter and lock expiry are always written in a single update
func (s *AuthService) Login(ctx context.Context, handle, password string) (string, *domain.User, error) {
	if handle == "" || password == "" {
		return "", nil, domain.ErrInvalidInput
	}

	user, err := s.repo.FindByHandle(ctx, strings.TrimSpace(handle))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	now := time.Now().UTC()

	if !user.Active {
		metrics.LoginAttemptsTotal.WithLabelValues("inactive").Inc()
		s.log.Warn().Str("handle", user.Handle).Msg("login attempt on inactive account")
		return "", nil, domain.ErrAccountInactive
	}

	if user.Locked(now) {
		metrics.LoginAttemptsTotal.WithLabelValues("locked").Inc()
		s.log.Warn().Str("handle", user.Handle).Time("lock_until", *user.LockUntil).Msg("login attempt on locked account")
		return "", nil, domain.ErrAccountLocked
	}
	lockExpired := user.LockUntil != nil

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		if err := s.recordFailure(ctx, user, lockExpired, now); err != nil {
			return "", nil, err
		}
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := s.repo.RecordLoginSuccess(ctx, user.ID, now); err != nil {
		return "", nil, err
	}
	user.FailedLoginAttempts = 0
	user.LockUntil = nil
	user.LastLogin = &now

	tok, err := s.issuer.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("handle", user.Handle).Msg("user logged in")
	return tok, user, nil
}

// recordFailure persists one failed attempt. A failure right after a lock
// expired resets the window to 1 instead of incrementing the stale counter.
func (s *AuthService) recordFailure(ctx context.Context, user *domain.User, lockExpired bool, now time.Time) error {
	if lockExpired {
		return s.repo.ResetLoginFailures(ctx, user.ID, 1)
	}

	if err := s.repo.RecordLoginFailure(ctx, user.ID, maxFailedAttempts, now.Add(lockDuration)); err != nil {
		return err
	}
	if user.FailedLoginAttempts+1 >= maxFailedAttempts {
		metrics.AccountLockoutsTotal.Inc()
		s.log.Warn().Str("handle", user.Handle).Msg("account locked after repeated failed logins")
	}
	return nil
}
