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

// CreatePortalUser inserts a new portal user. The caller supplies the
// password digest; the ID and timestamps are populated on success.
func (s *Store) CreatePortalUser(ctx context.Context, u *model.PortalUser) error {
	now := time.Now().UTC()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now

	const q = `INSERT INTO portal_users
		(id, username, password_hash, full_name, user_type, email, department,
		 is_active, created_at, updated_at)
		VALUES
		(:id, :username, :password_hash, :full_name, :user_type, :email, :department,
		 :is_active, :created_at, :updated_at)`

	if _, err := s.db.NamedExecContext(ctx, q, u); err != nil {
		return fmt.Errorf("insert portal user: %w", err)
	}
	return nil
}

// GetPortalUserForLogin performs the credential lookup: username, password
// digest, and user type must all match on an active account. Zero or one
// row can match because usernames are unique.
func (s *Store) GetPortalUserForLogin(ctx context.Context, username, passwordHash, userType string) (*model.PortalUser, error) {
	const q = `SELECT * FROM portal_users
		WHERE username = ? AND password_hash = ? AND user_type = ? AND is_active = TRUE`

	var u model.PortalUser
	err := s.db.GetContext(ctx, &u, s.rebind(q), username, passwordHash, userType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("portal login lookup: %w", err)
	}
	return &u, nil
}

// GetPortalUser returns a portal user by ID.
func (s *Store) GetPortalUser(ctx context.Context, id string) (*model.PortalUser, error) {
	var u model.PortalUser
	err := s.db.GetContext(ctx, &u,
		s.rebind("SELECT * FROM portal_users WHERE id = ?"), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get portal user: %w", err)
	}
	return &u, nil
}

// ListPortalUsers returns portal users, optionally filtered by user type.
func (s *Store) ListPortalUsers(ctx context.Context, userType string) ([]model.PortalUser, error) {
	var users []model.PortalUser
	var err error
	if userType != "" {
		err = s.db.SelectContext(ctx, &users,
			s.rebind("SELECT * FROM portal_users WHERE user_type = ? ORDER BY username"), userType)
	} else {
		err = s.db.SelectContext(ctx, &users,
			"SELECT * FROM portal_users ORDER BY username")
	}
	if err != nil {
		return nil, fmt.Errorf("list portal users: %w", err)
	}
	return users, nil
}

// UpdatePortalUser updates profile fields and, when u.PasswordHash is
// non-empty, the stored digest.
func (s *Store) UpdatePortalUser(ctx context.Context, u *model.PortalUser) error {
	u.UpdatedAt = time.Now().UTC()

	q := `UPDATE portal_users SET
		username = :username, full_name = :full_name, user_type = :user_type,
		email = :email, department = :department, is_active = :is_active,
		updated_at = :updated_at`
	if u.PasswordHash != "" {
		q += `, password_hash = :password_hash`
	}
	q += ` WHERE id = :id`

	result, err := s.db.NamedExecContext(ctx, q, u)
	if err != nil {
		return fmt.Errorf("update portal user: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update portal user rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetPortalUserActive flips the is_active flag.
func (s *Store) SetPortalUserActive(ctx context.Context, id string, active bool) error {
	result, err := s.db.ExecContext(ctx,
		s.rebind("UPDATE portal_users SET is_active = ?, updated_at = ? WHERE id = ?"),
		active, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("set portal user active: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set portal user active rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePortalUser removes a portal user by ID.
func (s *Store) DeletePortalUser(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx,
		s.rebind("DELETE FROM portal_users WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("delete portal user: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete portal user rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
