package util

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if string(hash) == "correct-horse" {
		t.Fatal("hash must not equal the password")
	}
	if !VerifyPassword("correct-horse", hash) {
		t.Error("expected the original password to verify")
	}
	if VerifyPassword("battery-staple", hash) {
		t.Error("expected a different password to fail")
	}
	if VerifyPassword("", hash) {
		t.Error("expected an empty password to fail")
	}
	if VerifyPassword("correct-horse", nil) {
		t.Error("expected a missing hash to fail")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	second, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if string(first) == string(second) {
		t.Error("expected distinct salts to yield distinct hashes")
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("12345"); err == nil {
		t.Error("expected a 5-character password to be rejected")
	}
	if err := ValidatePassword("123456"); err != nil {
		t.Errorf("expected a 6-character password to pass, got %v", err)
	}
}
