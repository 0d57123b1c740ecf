package auth

import (
	"testing"
	"time"
)

func testConfig() TokenConfig {
	return TokenConfig{
		Secret:   "test-secret-key",
		Issuer:   "test-issuer",
		Audience: "test-audience",
		TTL:      30 * time.Minute,
	}
}

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	m := NewTokenManager(testConfig())

	token, err := m.Generate("admin")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if token == "" {
		t.Fatal("Generate() returned empty token")
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("claims.Username = %q, want %q", claims.Username, "admin")
	}
	if claims.Role != RoleAdmin {
		t.Errorf("claims.Role = %q, want %q", claims.Role, RoleAdmin)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("claims.Issuer = %q, want %q", claims.Issuer, "test-issuer")
	}
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.TTL = -time.Minute
	m := NewTokenManager(cfg)

	token, err := m.Generate("admin")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := m.Validate(token); err != ErrExpiredToken {
		t.Errorf("Validate() error = %v, want ErrExpiredToken", err)
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	m := NewTokenManager(testConfig())

	token, err := m.Generate("admin")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	other := testConfig()
	other.Secret = "a-different-secret"
	if _, err := NewTokenManager(other).Validate(token); err != ErrInvalidToken {
		t.Errorf("Validate() with wrong secret error = %v, want ErrInvalidToken", err)
	}
}

func TestTokenManager_WrongIssuer(t *testing.T) {
	m := NewTokenManager(testConfig())

	token, err := m.Generate("admin")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	other := testConfig()
	other.Issuer = "someone-else"
	if _, err := NewTokenManager(other).Validate(token); err == nil {
		t.Error("Validate() with wrong issuer succeeded, want error")
	}
}

func TestTokenManager_GarbageToken(t *testing.T) {
	m := NewTokenManager(testConfig())

	if _, err := m.Validate("not-a-token"); err != ErrInvalidToken {
		t.Errorf("Validate() error = %v, want ErrInvalidToken", err)
	}
}
