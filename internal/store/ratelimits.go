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

// RateLimitResult is the authoritative window state after an increment.
type RateLimitResult struct {
	SubmissionCount int       `db:"submission_count"`
	WindowStart     time.Time `db:"window_start"`
}

// IncrementRateLimit records one submission attempt for identifier and
// returns the resulting window state, in a single atomic statement.
//
// A fresh identifier inserts a new window with count 1. An identifier whose
// stored window started before cutoff is reset in place (count 1, window
// moved to now). Otherwise the count is incremented and the window left
// where it was, so attempts past the quota grow the count without extending
// the caller's wait. Two concurrent requests for the same identifier cannot
// double-read a stale count; the database serializes the upsert.
func (s *Store) IncrementRateLimit(ctx context.Context, identifier string, now, cutoff time.Time) (RateLimitResult, error) {
	const q = `INSERT INTO admission_rate_limits
		(id, identifier, window_start, submission_count, created_at, updated_at)
		VALUES (?, ?, ?, 1, ?, ?)
		ON CONFLICT (identifier) DO UPDATE SET
			submission_count = CASE WHEN admission_rate_limits.window_start < ?
				THEN 1 ELSE admission_rate_limits.submission_count + 1 END,
			window_start = CASE WHEN admission_rate_limits.window_start < ?
				THEN excluded.window_start ELSE admission_rate_limits.window_start END,
			updated_at = excluded.updated_at
		RETURNING submission_count, window_start`

	var res RateLimitResult
	err := s.db.GetContext(ctx, &res, s.rebind(q),
		uuid.NewString(), identifier, now, now, now, cutoff, cutoff)
	if err != nil {
		return RateLimitResult{}, fmt.Errorf("increment rate limit: %w", err)
	}
	return res, nil
}

// DeleteExpiredRateLimits removes windows that started before cutoff. This
// is storage housekeeping only; IncrementRateLimit resets expired windows
// inline, so a failed sweep never affects correctness.
func (s *Store) DeleteExpiredRateLimits(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		s.rebind("DELETE FROM admission_rate_limits WHERE window_start < ?"), cutoff)
	if err != nil {
		return 0, fmt.Errorf("sweep rate limits: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("sweep rate limits rows affected: %w", err)
	}
	return n, nil
}

// GetRateLimit returns the stored window for identifier, if any.
func (s *Store) GetRateLimit(ctx context.Context, identifier string) (*model.RateLimitEntry, error) {
	var entry model.RateLimitEntry
	err := s.db.GetContext(ctx, &entry,
		s.rebind("SELECT * FROM admission_rate_limits WHERE identifier = ?"), identifier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get rate limit: %w", err)
	}
	return &entry, nil
}
