package store

import (
	"fmt"
	"strings"
)

// migrate applies the schema. Statements are written in the dialect subset
// SQLite and Postgres share and are safe to re-run on every start.
func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS admission_submissions (
			id TEXT PRIMARY KEY,
			student_name TEXT NOT NULL,
			date_of_birth TEXT NOT NULL DEFAULT '',
			gender TEXT NOT NULL DEFAULT '',
			contact_number TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			parent_name TEXT NOT NULL DEFAULT '',
			parent_contact TEXT NOT NULL DEFAULT '',
			stream TEXT NOT NULL DEFAULT '',
			previous_school TEXT NOT NULL DEFAULT '',
			sslc_result TEXT NOT NULL DEFAULT '',
			preferred_language TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS admission_rate_limits (
			id TEXT PRIMARY KEY,
			identifier TEXT UNIQUE NOT NULL,
			window_start TIMESTAMP NOT NULL,
			submission_count INTEGER NOT NULL DEFAULT 1,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS portal_users (
			id TEXT PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			full_name TEXT NOT NULL DEFAULT '',
			user_type TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			department TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS staff (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			position TEXT NOT NULL DEFAULT '',
			department TEXT NOT NULL DEFAULT '',
			qualification TEXT NOT NULL DEFAULT '',
			photo_url TEXT NOT NULL DEFAULT '',
			staff_type TEXT NOT NULL,
			display_order INTEGER NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS content_sections (
			section TEXT PRIMARY KEY,
			data TEXT NOT NULL DEFAULT '{}',
			updated_at TIMESTAMP NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS admins (
			id TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			last_login_at TIMESTAMP,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_submissions_status ON admission_submissions(status)`,
		`CREATE INDEX IF NOT EXISTS idx_submissions_created ON admission_submissions(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_rate_limits_window ON admission_rate_limits(window_start)`,
		`CREATE INDEX IF NOT EXISTS idx_staff_type ON staff(staff_type)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			// ALTER TABLE ADD COLUMN re-runs fail on both drivers with a
			// duplicate-column error; treat those as applied.
			if strings.Contains(err.Error(), "duplicate column") {
				continue
			}
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}
