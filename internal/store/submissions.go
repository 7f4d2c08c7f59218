package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sssbpuc/campusd/internal/model"
)

// CreateSubmission inserts a new admission submission. The ID and timestamps
// on sub are populated after a successful insert.
func (s *Store) CreateSubmission(ctx context.Context, sub *model.Submission) error {
	now := time.Now().UTC()
	sub.ID = uuid.NewString()
	sub.CreatedAt = now
	sub.UpdatedAt = now
	if sub.Status == "" {
		sub.Status = model.StatusPending
	}

	const q = `INSERT INTO admission_submissions
		(id, student_name, date_of_birth, gender, contact_number, email, address,
		 parent_name, parent_contact, stream, previous_school, sslc_result,
		 preferred_language, status, created_at, updated_at)
		VALUES
		(:id, :student_name, :date_of_birth, :gender, :contact_number, :email, :address,
		 :parent_name, :parent_contact, :stream, :previous_school, :sslc_result,
		 :preferred_language, :status, :created_at, :updated_at)`

	if _, err := s.db.NamedExecContext(ctx, q, sub); err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

// GetSubmission returns a submission by ID.
func (s *Store) GetSubmission(ctx context.Context, id string) (*model.Submission, error) {
	var sub model.Submission
	err := s.db.GetContext(ctx, &sub,
		s.rebind("SELECT * FROM admission_submissions WHERE id = ?"), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return &sub, nil
}

// ListSubmissions returns submissions newest first. A non-empty status
// filters the result.
func (s *Store) ListSubmissions(ctx context.Context, status string) ([]model.Submission, error) {
	var subs []model.Submission
	var err error
	if status != "" {
		err = s.db.SelectContext(ctx, &subs,
			s.rebind("SELECT * FROM admission_submissions WHERE status = ? ORDER BY created_at DESC"), status)
	} else {
		err = s.db.SelectContext(ctx, &subs,
			"SELECT * FROM admission_submissions ORDER BY created_at DESC")
	}
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return subs, nil
}

// UpdateSubmissionStatus moves a submission to a new review state.
func (s *Store) UpdateSubmissionStatus(ctx context.Context, id, status string) error {
	result, err := s.db.ExecContext(ctx,
		s.rebind("UPDATE admission_submissions SET status = ?, updated_at = ? WHERE id = ?"),
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update submission status: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update submission status rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteSubmission removes a submission by ID.
func (s *Store) DeleteSubmission(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx,
		s.rebind("DELETE FROM admission_submissions WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("delete submission: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete submission rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
