package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Sign("uid-123", "users")
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if claims.UID != "uid-123" {
		t.Fatalf("uid = %q, want uid-123", claims.UID)
	}
	if claims.Role != "users" {
		t.Fatalf("role = %q, want users", claims.Role)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("other-secret", time.Hour)

	token, err := issuer.Sign("uid-123", "users")
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	if _, err := other.Parse(token); err == nil {
		t.Fatalf("expected verification failure with wrong secret")
	}
}

func TestTokenNoExpiry(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 0)

	token, err := issuer.Sign("uid-123", "users")
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if claims.ExpiresAt != nil {
		t.Fatalf("expected no expiry claim, got %v", claims.ExpiresAt)
	}
}

func TestTokenMalformed(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	if _, err := issuer.Parse("not-a-token"); err == nil {
		t.Fatalf("expected parse failure for malformed token")
	}
}
