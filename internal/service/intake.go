package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sssbpuc/campusd/internal/model"
	"github.com/sssbpuc/campusd/internal/store"
)

// Rate limit policy for public admission submissions.
const (
	MaxSubmissionsPerWindow = 3
	RateLimitWindow         = time.Hour
)

// ErrNoFormData is returned when the intake payload is absent or carries no
// email. It is detected before any datastore access.
var ErrNoFormData = errors.New("no form data provided")

// RateLimitedError rejects a submission that exceeded the per-identifier
// quota. RetryAfterMinutes counts up to the end of the caller's window.
type RateLimitedError struct {
	RetryAfterMinutes int
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("submission limit exceeded, retry in %d minutes", e.RetryAfterMinutes)
}

// IntakeStore is the slice of the datastore the intake procedure uses.
type IntakeStore interface {
	DeleteExpiredRateLimits(ctx context.Context, cutoff time.Time) (int64, error)
	IncrementRateLimit(ctx context.Context, identifier string, now, cutoff time.Time) (store.RateLimitResult, error)
	CreateSubmission(ctx context.Context, sub *model.Submission) error
}

// IntakeService accepts admission applications, enforcing a rolling
// per-identifier submission quota before persisting them.
type IntakeService struct {
	store  IntakeStore
	logger *slog.Logger
	now    func() time.Time // swappable for tests
}

// NewIntakeService creates an IntakeService backed by st.
func NewIntakeService(st IntakeStore, logger *slog.Logger) *IntakeService {
	return &IntakeService{store: st, logger: logger, now: time.Now}
}

// Submit runs the intake procedure and returns the stored submission's ID.
//
// The quota identifier is origin + "_" + email: a fingerprint of the request
// source, not of a person. Two applicants behind one origin submitting with
// the same email share a quota; the same origin with different emails does
// not. Trivially evaded by varying the email, which is an accepted property
// of this boundary.
//
// Bookkeeping failures (sweep, counter upsert) are logged and swallowed so
// that infrastructure hiccups never turn away an applicant; only the quota
// verdict itself and the final submission insert can reject.
func (s *IntakeService) Submit(ctx context.Context, form *model.AdmissionForm, origin string) (string, error) {
	if form == nil || form.Email == "" {
		return "", ErrNoFormData
	}
	if origin == "" {
		origin = "unknown"
	}

	now := s.now().UTC()
	cutoff := now.Add(-RateLimitWindow)
	identifier := origin + "_" + form.Email

	// Mask the identifier in logs; it embeds an email address.
	masked := maskIdentifier(identifier)
	s.logger.Debug("rate limit check", "identifier", masked)

	if _, err := s.store.DeleteExpiredRateLimits(ctx, cutoff); err != nil {
		s.logger.Warn("rate limit sweep failed", "error", err)
	}

	res, err := s.store.IncrementRateLimit(ctx, identifier, now, cutoff)
	if err != nil {
		// Fail open: weaker throttling beats blocking a legitimate applicant.
		s.logger.Warn("rate limit bookkeeping failed, allowing submission",
			"identifier", masked, "error", err)
	} else if res.SubmissionCount > MaxSubmissionsPerWindow {
		resetTime := res.WindowStart.Add(RateLimitWindow)
		minutes := int(math.Ceil(resetTime.Sub(now).Minutes()))
		if minutes < 1 {
			minutes = 1
		}
		s.logger.Info("submission rate limited",
			"identifier", masked, "retry_after_minutes", minutes)
		return "", &RateLimitedError{RetryAfterMinutes: minutes}
	}

	sub := model.NewSubmission(*form)
	if err := s.store.CreateSubmission(ctx, sub); err != nil {
		// The counter may already count this attempt. Over-counting is the
		// accepted inconsistency; it can only make the limiter stricter.
		return "", fmt.Errorf("store submission: %w", err)
	}

	s.logger.Info("admission submitted", "id", sub.ID)
	return sub.ID, nil
}

func maskIdentifier(identifier string) string {
	if len(identifier) <= 8 {
		return identifier + "***"
	}
	return identifier[:8] + "***"
}
