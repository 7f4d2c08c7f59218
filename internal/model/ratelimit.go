package model

import "time"

// RateLimitEntry tracks accepted admission submissions for one identifier
// inside the current counting window. The identifier is a composite of the
// caller's network origin and the submitted email, so it fingerprints a
// request source rather than a person. One row exists per identifier; an
// expired window is reset in place by the store's atomic upsert.
type RateLimitEntry struct {
	ID              string    `json:"id" db:"id"`
	Identifier      string    `json:"identifier" db:"identifier"`
	WindowStart     time.Time `json:"window_start" db:"window_start"`
	SubmissionCount int       `json:"submission_count" db:"submission_count"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
