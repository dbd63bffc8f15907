// Package token issues and verifies the stateless bearer credentials used by
// the API. Tokens are HS256-signed JWTs carrying only the user id and expiry;
// nothing is persisted and there is no revocation list — the access guard
// re-checks live account state on every request instead.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTTL = 7 * 24 * time.Hour

var (
	// ErrExpired means the signature checked out but the token is past its
	// expiry. Callers report it differently from ErrMalformed, but both deny
	// access identically.
	ErrExpired = errors.New("token expired")
	// ErrMalformed covers everything else: bad structure, wrong signature,
	// wrong signing method, missing subject.
	ErrMalformed = errors.New("token malformed")
)

// Issuer signs and verifies bearer tokens with a process-wide secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an Issuer. The caller is responsible for refusing to start
// with an empty secret; ttl falls back to 7 days when non-positive.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token embedding userID and an expiry of now + TTL.
func (i *Issuer) Issue(userID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify checks signature integrity before trusting any claim, then expiry,
// and returns the embedded user id.
func (i *Issuer) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpired
		}
		return "", ErrMalformed
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", ErrMalformed
	}
	return claims.Subject, nil
}
