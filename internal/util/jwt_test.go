package util

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hrdash/hr-dashboard-api/internal/domain"
)

func TestJWTGenerateAndParse(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	userID := uuid.New()

	token, expiresAt, err := manager.Generate(userID, "hr@example.com", domain.AccountRoleHR)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatal("expected a future expiry")
	}

	claims, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("user id = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "hr@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.Role != domain.AccountRoleHR {
		t.Errorf("role = %q", claims.Role)
	}
}

func TestJWTParseRejectsWrongSecret(t *testing.T) {
	token, _, err := NewJWTManager("secret-a", time.Hour).Generate(uuid.New(), "a@example.com", domain.AccountRoleEmployee)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := NewJWTManager("secret-b", time.Hour).Parse(token); err == nil {
		t.Fatal("expected a token signed with another secret to be rejected")
	}
}

func TestJWTParseRejectsExpired(t *testing.T) {
	token, _, err := NewJWTManager("test-secret", -time.Minute).Generate(uuid.New(), "a@example.com", domain.AccountRoleEmployee)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := NewJWTManager("test-secret", -time.Minute).Parse(token); err == nil {
		t.Fatal("expected an expired token to be rejected")
	}
}

func TestJWTParseRejectsGarbage(t *testing.T) {
	if _, err := NewJWTManager("test-secret", time.Hour).Parse("not-a-token"); err == nil {
		t.Fatal("expected garbage input to be rejected")
	}
}
