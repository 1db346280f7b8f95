package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/plutoride/vendor-app/internal/pkg/apperr"
	"github.com/plutoride/vendor-app/internal/pkg/logger"
	"github.com/plutoride/vendor-app/internal/pkg/models"
	"github.com/plutoride/vendor-app/internal/pkg/storage"
	"github.com/plutoride/vendor-app/internal/utils"
	"github.com/plutoride/vendor-app/services/session"
)

// Storage keys match the original client so an upgraded install finds its
// existing token.
const (
	tokenKey   = "token"
	profileKey = "userProfile"
)

// SessionManager owns the authentication state and the locally cached driver
// profile. It is the single process-wide session instance; the mutex guards
// it against the auto-refresh poller reading the token concurrently.
type SessionManager struct {
	store storage.Store
	gw    session.SessionGW

	mu      sync.RWMutex
	session models.Session
}

// NewSessionManager creates the session manager. Call Restore before serving.
func NewSessionManager(store storage.Store, gw session.SessionGW) *SessionManager {
	return &SessionManager{
		store:   store,
		gw:      gw,
		session: models.Session{IsLoading: true},
	}
}

// Restore populates the session from local storage. An empty or unreadable
// store is the expected logged-out state, never an error; storage failures
// are logged and swallowed.
func (s *SessionManager) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.session.IsLoading = false }()

	token, err := s.store.Get(ctx, tokenKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Failed to read token from storage", logger.Err(err))
		}
		s.session.Token = ""
		s.session.Profile = nil
		return
	}
	s.session.Token = token

	raw, err := s.store.Get(ctx, profileKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Failed to read profile from storage", logger.Err(err))
		}
		return
	}

	var stored models.StoredProfile
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		logger.Warn("Discarding unreadable stored profile", logger.Err(err))
		return
	}
	if stored.SchemaVersion != models.ProfileSchemaVersion {
		logger.Warn("Discarding stored profile with unknown schema version",
			logger.Int("version", stored.SchemaVersion))
		return
	}

	profile := stored.Profile
	s.session.Profile = &profile
}

// Login authenticates against the remote service. On success the token and
// any returned profile are persisted; on failure the prior session state is
// left untouched.
func (s *SessionManager) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	token, profile, err := s.gw.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Token = token
	if profile != nil {
		s.session.Profile = profile
	}

	s.persistLocked(ctx)

	current := s.session
	return &current, nil
}

// Signup registers a new vendor. The signup form is validated client-side
// before any network call; the profile is derived from the submitted fields
// and persisted alongside the issued token.
func (s *SessionManager) Signup(ctx context.Context, req models.SignupRequest) (*models.Session, error) {
	if errs := utils.ValidateSignup(req); len(errs) > 0 {
		return nil, apperr.Validation(errs)
	}

	token, err := s.gw.Signup(ctx, req)
	if err != nil {
		return nil, err
	}

	profile := models.DriverProfile{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		DrivingLicense: req.DrivingLicense,
		Vehicles: []models.Vehicle{
			{RegistrationNumber: req.RegistrationNumber},
		},
		SelectedStates:  req.States,
		ProfileComplete: true,
		LastUpdated:     time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Token = token
	s.session.Profile = &profile
	s.persistLocked(ctx)

	current := s.session
	return &current, nil
}

// Logout clears the session from memory and storage. The in-memory state is
// cleared regardless of storage outcome; a storage failure is logged only.
func (s *SessionManager) Logout(ctx context.Context) {
	s.mu.Lock()
	s.session.Token = ""
	s.session.Profile = nil
	s.mu.Unlock()

	if err := s.store.Delete(ctx, tokenKey); err != nil {
		logger.Warn("Failed to clear stored token", logger.Err(err))
	}
	if err := s.store.Delete(ctx, profileKey); err != nil {
		logger.Warn("Failed to clear stored profile", logger.Err(err))
	}
}

// UpdateProfile pushes a profile edit to the remote service, then persists
// the server-merged result locally. On any remote failure nothing is written
// locally. A 401 logs the session out.
func (s *SessionManager) UpdateProfile(ctx context.Context, updated models.DriverProfile) (*models.DriverProfile, error) {
	token := s.Token()
	if token == "" {
		return nil, apperr.NewValidation("token", "not logged in")
	}
	if updated.ID == "" {
		return nil, apperr.NewValidation("id", "profile id is required")
	}
	if errs := utils.ValidateProfile(updated); len(errs) > 0 {
		return nil, apperr.Validation(errs)
	}

	merged, err := s.gw.UpdateUser(ctx, token, updated)
	if err != nil {
		if apperr.IsAuthentication(err) {
			logger.Warn("Remote rejected the session token, logging out")
			s.Logout(ctx)
		}
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Profile = merged
	s.persistLocked(ctx)

	return merged, nil
}

// Token returns the current bearer token, empty when logged out
func (s *SessionManager) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

// Current returns a copy of the session state
func (s *SessionManager) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// persistLocked writes the session to storage. Storage failures degrade to a
// memory-only session and are logged, never surfaced. Caller holds the lock.
func (s *SessionManager) persistLocked(ctx context.Context) {
	if err := s.store.Set(ctx, tokenKey, s.session.Token); err != nil {
		logger.Warn("Failed to persist token", logger.Err(err))
	}

	if s.session.Profile == nil {
		return
	}

	stored := models.StoredProfile{
		SchemaVersion: models.ProfileSchemaVersion,
		Profile:       *s.session.Profile,
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		logger.Warn("Failed to encode profile", logger.Err(err))
		return
	}
	if err := s.store.Set(ctx, profileKey, string(raw)); err != nil {
		logger.Warn("Failed to persist profile", logger.Err(err))
	}
}
