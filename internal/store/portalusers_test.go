package store

import (
	"context"
	"errors"
	"testing"

	"github.com/sssbpuc/campusd/internal/model"
)

func seedPortalUser(t *testing.T, s *Store, username, hash, userType string, active bool) *model.PortalUser {
	t.Helper()
	u := &model.PortalUser{
		Username:     username,
		PasswordHash: hash,
		FullName:     "Test User",
		UserType:     userType,
		Email:        username + "@example.edu",
		Department:   "Science",
		IsActive:     active,
	}
	if err := s.CreatePortalUser(context.Background(), u); err != nil {
		t.Fatalf("CreatePortalUser: %v", err)
	}
	return u
}

func TestGetPortalUserForLogin(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedPortalUser(t, s, "jdoe", "hash-1", model.UserTypeStaff, true)

	got, err := s.GetPortalUserForLogin(ctx, "jdoe", "hash-1", model.UserTypeStaff)
	if err != nil {
		t.Fatalf("GetPortalUserForLogin: %v", err)
	}
	if got.Username != "jdoe" {
		t.Errorf("got username %q, want %q", got.Username, "jdoe")
	}

	// Wrong hash, wrong type, and unknown username are indistinguishable.
	cases := []struct {
		name                     string
		username, hash, userType string
	}{
		{"wrong hash", "jdoe", "hash-2", model.UserTypeStaff},
		{"wrong type", "jdoe", "hash-1", model.UserTypeStudent},
		{"unknown user", "nobody", "hash-1", model.UserTypeStaff},
	}
	for _, tc := range cases {
		if _, err := s.GetPortalUserForLogin(ctx, tc.username, tc.hash, tc.userType); !errors.Is(err, ErrNotFound) {
			t.Errorf("%s: expected ErrNotFound, got %v", tc.name, err)
		}
	}
}

func TestGetPortalUserForLoginInactive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedPortalUser(t, s, "jdoe", "hash-1", model.UserTypeStaff, false)

	if _, err := s.GetPortalUserForLogin(ctx, "jdoe", "hash-1", model.UserTypeStaff); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for inactive account, got %v", err)
	}
}

func TestPortalUserCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := seedPortalUser(t, s, "s1024", "hash-1", model.UserTypeStudent, true)
	if u.ID == "" {
		t.Fatal("expected non-empty ID after create")
	}

	// Update profile without touching the password
	u.FullName = "Renamed"
	u.PasswordHash = ""
	if err := s.UpdatePortalUser(ctx, u); err != nil {
		t.Fatalf("UpdatePortalUser: %v", err)
	}
	got, err := s.GetPortalUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetPortalUser: %v", err)
	}
	if got.FullName != "Renamed" {
		t.Errorf("got name %q, want %q", got.FullName, "Renamed")
	}
	if got.PasswordHash != "hash-1" {
		t.Errorf("password hash changed on profile-only update: %q", got.PasswordHash)
	}

	// Update with a new hash replaces it
	u.PasswordHash = "hash-2"
	if err := s.UpdatePortalUser(ctx, u); err != nil {
		t.Fatalf("UpdatePortalUser (password): %v", err)
	}
	got, _ = s.GetPortalUser(ctx, u.ID)
	if got.PasswordHash != "hash-2" {
		t.Errorf("got hash %q, want %q", got.PasswordHash, "hash-2")
	}

	if err := s.SetPortalUserActive(ctx, u.ID, false); err != nil {
		t.Fatalf("SetPortalUserActive: %v", err)
	}
	got, _ = s.GetPortalUser(ctx, u.ID)
	if got.IsActive {
		t.Error("expected account inactive after SetPortalUserActive(false)")
	}

	if err := s.DeletePortalUser(ctx, u.ID); err != nil {
		t.Fatalf("DeletePortalUser: %v", err)
	}
	if _, err := s.GetPortalUser(ctx, u.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestListPortalUsersByType(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedPortalUser(t, s, "teacher1", "h", model.UserTypeStaff, true)
	seedPortalUser(t, s, "student1", "h", model.UserTypeStudent, true)
	seedPortalUser(t, s, "student2", "h", model.UserTypeStudent, false)

	all, err := s.ListPortalUsers(ctx, "")
	if err != nil {
		t.Fatalf("ListPortalUsers: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d users, want 3", len(all))
	}

	students, err := s.ListPortalUsers(ctx, model.UserTypeStudent)
	if err != nil {
		t.Fatalf("ListPortalUsers(student): %v", err)
	}
	if len(students) != 2 {
		t.Errorf("got %d students, want 2", len(students))
	}
}
