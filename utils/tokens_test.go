package utils

import (
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	m, err := NewManager("test-signing-key")
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}

	token, err := m.NewJWT(42, "keks@example.com", time.Hour)
	if err != nil {
		t.Fatalf("NewJWT returned error: %v", err)
	}

	userID, email, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if userID != 42 {
		t.Errorf("expected user id 42, got %d", userID)
	}
	if email != "keks@example.com" {
		t.Errorf("unexpected email: %q", email)
	}
}

func TestParseRejectsWrongKey(t *testing.T) {
	m1, _ := NewManager("key-one")
	m2, _ := NewManager("key-two")

	token, err := m1.NewJWT(1, "a@b.com", time.Hour)
	if err != nil {
		t.Fatalf("NewJWT returned error: %v", err)
	}

	if _, _, err := m2.Parse(token); err == nil {
		t.Fatal("expected parse to fail with a different signing key")
	}
}

func TestNewManagerRequiresKey(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Fatal("expected error for empty signing key")
	}
}

func TestNewRefreshToken(t *testing.T) {
	m, _ := NewManager("test-signing-key")

	a, err := m.NewRefreshToken()
	if err != nil {
		t.Fatalf("NewRefreshToken returned error: %v", err)
	}
	b, err := m.NewRefreshToken()
	if err != nil {
		t.Fatalf("NewRefreshToken returned error: %v", err)
	}

	if len(a) != 64 {
		t.Errorf("expected 64 hex characters, got %d", len(a))
	}
	if a == b {
		t.Error("two refresh tokens should not collide")
	}
}
