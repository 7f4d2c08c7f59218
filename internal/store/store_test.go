package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sssbpuc/campusd/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(Options{}) // in-memory SQLite
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAdminCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	has, err := s.HasAnyAdmin(ctx)
	if err != nil {
		t.Fatalf("HasAnyAdmin: %v", err)
	}
	if has {
		t.Fatal("expected empty store to have no admins")
	}

	admin := &model.Admin{
		Email:        "principal@example.edu",
		PasswordHash: "deadbeef",
		Name:         "Principal",
		IsActive:     true,
	}
	if err := s.CreateAdmin(ctx, admin); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	if admin.ID == "" {
		t.Fatal("expected non-empty ID after create")
	}

	has, _ = s.HasAnyAdmin(ctx)
	if !has {
		t.Error("expected HasAnyAdmin to be true after create")
	}

	got, err := s.GetAdminByEmail(ctx, "principal@example.edu")
	if err != nil {
		t.Fatalf("GetAdminByEmail: %v", err)
	}
	if got.ID != admin.ID {
		t.Errorf("got ID %q, want %q", got.ID, admin.ID)
	}
	if got.LastLoginAt != nil {
		t.Error("expected nil LastLoginAt before first login")
	}

	if err := s.UpdateAdminLastLogin(ctx, admin.ID); err != nil {
		t.Fatalf("UpdateAdminLastLogin: %v", err)
	}
	got, _ = s.GetAdmin(ctx, admin.ID)
	if got.LastLoginAt == nil {
		t.Error("expected LastLoginAt to be set after login")
	}

	list, err := s.ListAdmins(ctx)
	if err != nil {
		t.Fatalf("ListAdmins: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("got %d admins, want 1", len(list))
	}

	if _, err := s.GetAdminByEmail(ctx, "nobody@example.edu"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown email, got %v", err)
	}
}

func TestContentSections(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := &model.ContentSection{
		Section: "hero",
		Data:    json.RawMessage(`{"title":"Welcome"}`),
	}
	if err := s.UpsertContentSection(ctx, c); err != nil {
		t.Fatalf("UpsertContentSection: %v", err)
	}

	got, err := s.GetContentSection(ctx, "hero")
	if err != nil {
		t.Fatalf("GetContentSection: %v", err)
	}
	var payload struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(got.Data, &payload); err != nil {
		t.Fatalf("stored data is not valid JSON: %v", err)
	}
	if payload.Title != "Welcome" {
		t.Errorf("got title %q, want %q", payload.Title, "Welcome")
	}

	// Upsert replaces in place
	c.Data = json.RawMessage(`{"title":"Updated"}`)
	if err := s.UpsertContentSection(ctx, c); err != nil {
		t.Fatalf("UpsertContentSection (update): %v", err)
	}
	list, err := s.ListContentSections(ctx)
	if err != nil {
		t.Fatalf("ListContentSections: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("got %d sections after upsert, want 1", len(list))
	}

	if _, err := s.GetContentSection(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown section, got %v", err)
	}
}
