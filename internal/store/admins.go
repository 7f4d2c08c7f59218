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

// CreateAdmin inserts a new admin account. The caller supplies the password
// digest; the ID and timestamps are populated on success.
func (s *Store) CreateAdmin(ctx context.Context, a *model.Admin) error {
	now := time.Now().UTC()
	a.ID = uuid.NewString()
	a.CreatedAt = now
	a.UpdatedAt = now

	const q = `INSERT INTO admins
		(id, email, password_hash, name, is_active, created_at, updated_at)
		VALUES
		(:id, :email, :password_hash, :name, :is_active, :created_at, :updated_at)`

	if _, err := s.db.NamedExecContext(ctx, q, a); err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// GetAdminByEmail returns an admin account by its unique email.
func (s *Store) GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var a model.Admin
	err := s.db.GetContext(ctx, &a,
		s.rebind("SELECT * FROM admins WHERE email = ?"), email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get admin by email: %w", err)
	}
	return &a, nil
}

// GetAdmin returns an admin account by ID.
func (s *Store) GetAdmin(ctx context.Context, id string) (*model.Admin, error) {
	var a model.Admin
	err := s.db.GetContext(ctx, &a, s.rebind("SELECT * FROM admins WHERE id = ?"), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &a, nil
}

// ListAdmins returns all admin accounts.
func (s *Store) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	var admins []model.Admin
	if err := s.db.SelectContext(ctx, &admins, "SELECT * FROM admins ORDER BY email"); err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}

// HasAnyAdmin reports whether at least one admin account exists, used for
// first-run detection at startup.
func (s *Store) HasAnyAdmin(ctx context.Context) (bool, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM admins"); err != nil {
		return false, fmt.Errorf("count admins: %w", err)
	}
	return count > 0, nil
}

// UpdateAdminLastLogin stamps the account's last successful login.
func (s *Store) UpdateAdminLastLogin(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx,
		s.rebind("UPDATE admins SET last_login_at = ? WHERE id = ?"),
		time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update admin last login: %w", err)
	}
	return nil
}
