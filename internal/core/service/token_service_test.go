package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/grupocrm/crm-system/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 0)

	token, err := svc.Issue("alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	principal, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if principal.Username != "alice" {
		t.Fatalf("unexpected username: %s", principal.Username)
	}
	if principal.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", principal.Role)
	}
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 0)

	token, err := svc.Issue("alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Flip one character in the signature segment.
	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	if _, err := svc.Validate(tampered); !errors.Is(err, domain.ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour, 0)
	verifier := NewTokenService("secret-b", time.Hour, 0)

	token, err := issuer.Issue("alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Validate(token); !errors.Is(err, domain.ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

// expiredToken signs a token whose expiry is age in the past, using the same
// claims layout the service produces.
func expiredToken(t *testing.T, secret string, age time.Duration) string {
	t.Helper()
	now := time.Now().UTC()
	claims := tokenClaims{
		Role: domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			IssuedAt:  jwt.NewNumericDate(now.Add(-age - time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-age)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}
	return token
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 0)

	token := expiredToken(t, "secret", time.Minute)
	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_Leeway(t *testing.T) {
	strict := NewTokenService("secret", time.Hour, 0)
	lenient := NewTokenService("secret", time.Hour, 2*time.Minute)

	token := expiredToken(t, "secret", time.Minute)

	if _, err := strict.Validate(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("strict: expected ErrTokenExpired, got %v", err)
	}
	if _, err := lenient.Validate(token); err != nil {
		t.Fatalf("lenient: expected token inside leeway to pass, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 0)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c"} {
		if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", token, err)
		}
	}
}

func TestTokenService_RejectsUnsignedAlg(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 0)

	claims := tokenClaims{
		Role: domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "mallory",
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing none token: %v", err)
	}

	if _, err := svc.Validate(unsigned); err == nil {
		t.Fatalf("expected alg=none token to be rejected")
	}
}

func TestTokenService_EmptySubject(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 0)

	token, err := svc.Issue("", domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed for empty subject, got %v", err)
	}
}

func TestTokenService_TokenShape(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 0)

	token, err := svc.Issue("alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if parts := strings.Split(token, "."); len(parts) != 3 {
		t.Fatalf("expected three JWT segments, got %d", len(parts))
	}
}
