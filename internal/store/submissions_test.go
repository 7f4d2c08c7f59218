package store

import (
	"context"
	"errors"
	"testing"

	"github.com/sssbpuc/campusd/internal/model"
)

func testForm(email string) model.AdmissionForm {
	return model.AdmissionForm{
		StudentName:       "A. Student",
		DateOfBirth:       "2009-06-15",
		Gender:            "female",
		ContactNumber:     "9876543210",
		Email:             email,
		Address:           "12 School Road",
		ParentName:        "B. Parent",
		ParentContact:     "9876543211",
		Stream:            "science",
		PreviousSchool:    "Town High School",
		SSLCResult:        "92%",
		PreferredLanguage: "kannada",
	}
}

func TestSubmissionCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sub := model.NewSubmission(testForm("a@example.com"))
	if err := s.CreateSubmission(ctx, sub); err != nil {
		t.Fatalf("CreateSubmission: %v", err)
	}
	if sub.ID == "" {
		t.Fatal("expected non-empty ID after create")
	}
	if sub.Status != model.StatusPending {
		t.Errorf("got status %q, want %q", sub.Status, model.StatusPending)
	}

	got, err := s.GetSubmission(ctx, sub.ID)
	if err != nil {
		t.Fatalf("GetSubmission: %v", err)
	}
	if got.Email != "a@example.com" {
		t.Errorf("got email %q, want %q", got.Email, "a@example.com")
	}
	if got.Stream != "science" {
		t.Errorf("got stream %q, want %q", got.Stream, "science")
	}

	if err := s.UpdateSubmissionStatus(ctx, sub.ID, model.StatusApproved); err != nil {
		t.Fatalf("UpdateSubmissionStatus: %v", err)
	}
	got, _ = s.GetSubmission(ctx, sub.ID)
	if got.Status != model.StatusApproved {
		t.Errorf("got status %q, want %q", got.Status, model.StatusApproved)
	}

	if err := s.DeleteSubmission(ctx, sub.ID); err != nil {
		t.Fatalf("DeleteSubmission: %v", err)
	}
	if _, err := s.GetSubmission(ctx, sub.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestListSubmissionsByStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		sub := model.NewSubmission(testForm(email))
		if err := s.CreateSubmission(ctx, sub); err != nil {
			t.Fatalf("CreateSubmission: %v", err)
		}
		if email == "b@example.com" {
			if err := s.UpdateSubmissionStatus(ctx, sub.ID, model.StatusRejected); err != nil {
				t.Fatalf("UpdateSubmissionStatus: %v", err)
			}
		}
	}

	all, err := s.ListSubmissions(ctx, "")
	if err != nil {
		t.Fatalf("ListSubmissions: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d submissions, want 3", len(all))
	}

	pending, err := s.ListSubmissions(ctx, model.StatusPending)
	if err != nil {
		t.Fatalf("ListSubmissions(pending): %v", err)
	}
	if len(pending) != 2 {
		t.Errorf("got %d pending submissions, want 2", len(pending))
	}

	rejected, err := s.ListSubmissions(ctx, model.StatusRejected)
	if err != nil {
		t.Fatalf("ListSubmissions(rejected): %v", err)
	}
	if len(rejected) != 1 {
		t.Errorf("got %d rejected submissions, want 1", len(rejected))
	}
}

func TestSubmissionNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.GetSubmission(ctx, "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetSubmission: expected ErrNotFound, got %v", err)
	}
	if err := s.UpdateSubmissionStatus(ctx, "no-such-id", model.StatusApproved); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateSubmissionStatus: expected ErrNotFound, got %v", err)
	}
	if err := s.DeleteSubmission(ctx, "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteSubmission: expected ErrNotFound, got %v", err)
	}
}
