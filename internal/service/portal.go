package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sssbpuc/campusd/internal/model"
	"github.com/sssbpuc/campusd/internal/store"
)

// Verifier errors. ErrInvalidCredentials covers every credential miss —
// unknown username, wrong password, wrong user type, or inactive account —
// so responses cannot be used to enumerate usernames.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingFields      = errors.New("missing required fields")
)

// PortalStore is the read-only slice of the datastore the verifier uses.
type PortalStore interface {
	GetPortalUserForLogin(ctx context.Context, username, passwordHash, userType string) (*model.PortalUser, error)
}

// PortalService verifies portal credentials against stored password digests.
type PortalService struct {
	store PortalStore
}

// NewPortalService creates a PortalService backed by st.
func NewPortalService(st PortalStore) *PortalService {
	return &PortalService{store: st}
}

// Verify checks a username/password/userType triple and returns the matching
// active user. Input validation happens before any datastore access. A
// datastore fault is returned as a wrapped error, distinct from
// ErrInvalidCredentials, so callers can answer 500 instead of 401.
func (s *PortalService) Verify(ctx context.Context, username, password, userType string) (*model.PortalUser, error) {
	if username == "" || password == "" || userType == "" {
		return nil, ErrMissingFields
	}

	user, err := s.store.GetPortalUserForLogin(ctx, username, PasswordDigest(password), userType)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("credential lookup: %w", err)
	}
	return user, nil
}
