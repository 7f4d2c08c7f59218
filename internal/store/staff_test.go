package store

import (
	"context"
	"errors"
	"testing"

	"github.com/sssbpuc/campusd/internal/model"
)

func seedStaff(t *testing.T, s *Store, name string, order int, active bool) *model.StaffMember {
	t.Helper()
	m := &model.StaffMember{
		Name:          name,
		Position:      "Lecturer",
		Department:    "Physics",
		Qualification: "MSc",
		StaffType:     model.StaffLecturer,
		DisplayOrder:  order,
		IsActive:      active,
	}
	if err := s.CreateStaffMember(context.Background(), m); err != nil {
		t.Fatalf("CreateStaffMember: %v", err)
	}
	return m
}

func TestStaffCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	m := seedStaff(t, s, "Dr. Rao", 1, true)
	if m.ID == "" {
		t.Fatal("expected non-empty ID after create")
	}

	got, err := s.GetStaffMember(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetStaffMember: %v", err)
	}
	if got.Name != "Dr. Rao" {
		t.Errorf("got name %q, want %q", got.Name, "Dr. Rao")
	}

	m.Position = "Head of Department"
	if err := s.UpdateStaffMember(ctx, m); err != nil {
		t.Fatalf("UpdateStaffMember: %v", err)
	}
	got, _ = s.GetStaffMember(ctx, m.ID)
	if got.Position != "Head of Department" {
		t.Errorf("got position %q, want %q", got.Position, "Head of Department")
	}

	if err := s.SetStaffMemberActive(ctx, m.ID, false); err != nil {
		t.Fatalf("SetStaffMemberActive: %v", err)
	}
	got, _ = s.GetStaffMember(ctx, m.ID)
	if got.IsActive {
		t.Error("expected member inactive after SetStaffMemberActive(false)")
	}

	if err := s.DeleteStaffMember(ctx, m.ID); err != nil {
		t.Fatalf("DeleteStaffMember: %v", err)
	}
	if _, err := s.GetStaffMember(ctx, m.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestListStaffOrderAndVisibility(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedStaff(t, s, "Second", 2, true)
	seedStaff(t, s, "First", 1, true)
	seedStaff(t, s, "Hidden", 3, false)

	public, err := s.ListStaff(ctx, true)
	if err != nil {
		t.Fatalf("ListStaff(activeOnly): %v", err)
	}
	if len(public) != 2 {
		t.Fatalf("got %d public members, want 2", len(public))
	}
	if public[0].Name != "First" || public[1].Name != "Second" {
		t.Errorf("got order [%s, %s], want [First, Second]", public[0].Name, public[1].Name)
	}

	all, err := s.ListStaff(ctx, false)
	if err != nil {
		t.Fatalf("ListStaff(all): %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d members, want 3", len(all))
	}
}
