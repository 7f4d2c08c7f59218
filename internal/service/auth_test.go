package service

import (
	"context"
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	svc := NewAuthService("test-secret")
	ctx := context.Background()

	token, err := svc.IssueJWT(ctx, "admin-1", "admin@example.edu", time.Hour)
	if err != nil {
		t.Fatalf("IssueJWT: %v", err)
	}

	p, err := svc.ValidateJWT(ctx, token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if p.AdminID != "admin-1" {
		t.Errorf("got admin ID %q, want %q", p.AdminID, "admin-1")
	}
	if p.Email != "admin@example.edu" {
		t.Errorf("got email %q, want %q", p.Email, "admin@example.edu")
	}
}

func TestJWTExpired(t *testing.T) {
	svc := NewAuthService("test-secret")
	ctx := context.Background()

	token, err := svc.IssueJWT(ctx, "admin-1", "admin@example.edu", -time.Minute)
	if err != nil {
		t.Fatalf("IssueJWT: %v", err)
	}
	if _, err := svc.ValidateJWT(ctx, token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	ctx := context.Background()
	token, err := NewAuthService("secret-a").IssueJWT(ctx, "admin-1", "a@example.edu", time.Hour)
	if err != nil {
		t.Fatalf("IssueJWT: %v", err)
	}
	if _, err := NewAuthService("secret-b").ValidateJWT(ctx, token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestJWTGarbage(t *testing.T) {
	svc := NewAuthService("test-secret")
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.ValidateJWT(context.Background(), tok); err != ErrInvalidToken {
			t.Errorf("token %q: expected ErrInvalidToken, got %v", tok, err)
		}
	}
}

func TestPasswordDigest(t *testing.T) {
	// Deterministic hex SHA-256
	got := PasswordDigest("password123")
	want := "ef92b778bafe771e89245b89ecbc08a44a4e166c06659911881f383d4473e94f"
	if got != want {
		t.Errorf("PasswordDigest = %q, want %q", got, want)
	}
	if PasswordDigest("a") == PasswordDigest("b") {
		t.Error("different inputs produced identical digests")
	}
}
