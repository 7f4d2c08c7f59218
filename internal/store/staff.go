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

// CreateStaffMember inserts a new staff directory entry.
func (s *Store) CreateStaffMember(ctx context.Context, m *model.StaffMember) error {
	now := time.Now().UTC()
	m.ID = uuid.NewString()
	m.CreatedAt = now
	m.UpdatedAt = now

	const q = `INSERT INTO staff
		(id, name, position, department, qualification, photo_url, staff_type,
		 display_order, is_active, created_at, updated_at)
		VALUES
		(:id, :name, :position, :department, :qualification, :photo_url, :staff_type,
		 :display_order, :is_active, :created_at, :updated_at)`

	if _, err := s.db.NamedExecContext(ctx, q, m); err != nil {
		return fmt.Errorf("insert staff member: %w", err)
	}
	return nil
}

// GetStaffMember returns a staff member by ID.
func (s *Store) GetStaffMember(ctx context.Context, id string) (*model.StaffMember, error) {
	var m model.StaffMember
	err := s.db.GetContext(ctx, &m, s.rebind("SELECT * FROM staff WHERE id = ?"), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get staff member: %w", err)
	}
	return &m, nil
}

// ListStaff returns the directory ordered for display. When activeOnly is
// set, hidden members are excluded; the public endpoint always sets it.
func (s *Store) ListStaff(ctx context.Context, activeOnly bool) ([]model.StaffMember, error) {
	q := "SELECT * FROM staff"
	if activeOnly {
		q += " WHERE is_active = TRUE"
	}
	q += " ORDER BY display_order, name"

	var members []model.StaffMember
	if err := s.db.SelectContext(ctx, &members, q); err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	return members, nil
}

// UpdateStaffMember updates all editable fields of a staff entry.
func (s *Store) UpdateStaffMember(ctx context.Context, m *model.StaffMember) error {
	m.UpdatedAt = time.Now().UTC()

	const q = `UPDATE staff SET
		name = :name, position = :position, department = :department,
		qualification = :qualification, photo_url = :photo_url,
		staff_type = :staff_type, display_order = :display_order,
		is_active = :is_active, updated_at = :updated_at
		WHERE id = :id`

	result, err := s.db.NamedExecContext(ctx, q, m)
	if err != nil {
		return fmt.Errorf("update staff member: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update staff member rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetStaffMemberActive flips the is_active flag.
func (s *Store) SetStaffMemberActive(ctx context.Context, id string, active bool) error {
	result, err := s.db.ExecContext(ctx,
		s.rebind("UPDATE staff SET is_active = ?, updated_at = ? WHERE id = ?"),
		active, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("set staff member active: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set staff member active rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteStaffMember removes a staff entry by ID.
func (s *Store) DeleteStaffMember(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, s.rebind("DELETE FROM staff WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("delete staff member: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete staff member rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
