package util

import (
	"testing"
	"time"
)

func TestAdminToken_RoundTrip(t *testing.T) {
	token, err := GenerateAdminToken("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAdminToken() error = %v", err)
	}

	claims, err := ParseAdminToken("test-secret", token)
	if err != nil {
		t.Fatalf("ParseAdminToken() error = %v", err)
	}
	if claims.Role != "admin" {
		t.Errorf("claims.Role = %q, want %q", claims.Role, "admin")
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Errorf("claims.ExpiresAt = %v, want in the future", claims.ExpiresAt)
	}
}

func TestParseAdminToken_WrongSecret(t *testing.T) {
	token, err := GenerateAdminToken("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAdminToken() error = %v", err)
	}

	if _, err := ParseAdminToken("other-secret", token); err == nil {
		t.Error("ParseAdminToken() with wrong secret error = nil, want error")
	}
}

func TestParseAdminToken_Garbage(t *testing.T) {
	if _, err := ParseAdminToken("test-secret", "not-a-jwt"); err == nil {
		t.Error("ParseAdminToken() with garbage error = nil, want error")
	}
}
