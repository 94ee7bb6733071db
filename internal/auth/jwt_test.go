package auth

import (
	"testing"
	"time"

	"github.com/mamadbah2/wms/internal/config"
)

func testManager() *JWTManager {
	return NewJWTManager(config.AuthConfig{JWTSecret: "test-secret", JWTExpirationHours: 1, JWTIssuer: "wms"})
}

func TestGenerateAndValidateToken(t *testing.T) {
	m := testManager()

	token, err := m.GenerateToken(Identity{UserID: "u1", Email: "admin@wms.test"})
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "admin@wms.test" || claims.Issuer != "wms" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	m := testManager()
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := m.GenerateToken(Identity{UserID: "u1"})
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}
	if _, err := m.ValidateToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestValidateTokenRejectsOtherSecret(t *testing.T) {
	other := NewJWTManager(config.AuthConfig{JWTSecret: "other", JWTExpirationHours: 1, JWTIssuer: "wms"})
	token, _ := other.GenerateToken(Identity{UserID: "u1"})

	if _, err := testManager().ValidateToken(token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if !VerifyPassword(hash, "s3cret") {
		t.Fatal("expected password to verify")
	}
	if VerifyPassword(hash, "other") {
		t.Fatal("expected wrong password to fail")
	}
}
