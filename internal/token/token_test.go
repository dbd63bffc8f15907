package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssuer_RoundTrip(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	signed, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	userID, err := issuer.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != "user-123" {
		t.Fatalf("expected user-123, got %q", userID)
	}
}

func TestIssuer_DefaultTTL(t *testing.T) {
	issuer := NewIssuer("secret", 0)
	if issuer.ttl != defaultTTL {
		t.Fatalf("expected default TTL, got %v", issuer.ttl)
	}
}

func TestIssuer_Expired(t *testing.T) {
	signed := signToken(t, "secret", "user-123", time.Now().Add(-time.Minute))

	issuer := NewIssuer("secret", time.Hour)
	if _, err := issuer.Verify(signed); err != ErrExpired {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestIssuer_WrongKey(t *testing.T) {
	other := NewIssuer("other-secret", time.Hour)
	signed, err := other.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	issuer := NewIssuer("secret", time.Hour)
	if _, err := issuer.Verify(signed); err != ErrMalformed {
		t.Fatalf("expected ErrMalformed for wrong key, got %v", err)
	}
}

func TestIssuer_WrongKeyAndExpired(t *testing.T) {
	// Signature integrity is checked before expiry: a foreign expired token
	// must read as malformed, not expired.
	signed := signToken(t, "other-secret", "user-123", time.Now().Add(-time.Minute))

	issuer := NewIssuer("secret", time.Hour)
	if _, err := issuer.Verify(signed); err != ErrMalformed {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestIssuer_Garbage(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	if _, err := issuer.Verify("not-a-token"); err != ErrMalformed {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestIssuer_MissingSubject(t *testing.T) {
	signed := signToken(t, "secret", "", time.Now().Add(time.Hour))

	issuer := NewIssuer("secret", time.Hour)
	if _, err := issuer.Verify(signed); err != ErrMalformed {
		t.Fatalf("expected ErrMalformed for empty subject, got %v", err)
	}
}

func signToken(t *testing.T, secret, subject string, expiry time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiry),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}
