package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"daydash/internal/google"
	"daydash/internal/logging"
	"daydash/internal/store"
)

// Manager owns the authentication lifecycle: obtaining, persisting,
// restoring and clearing credentials. It is the only writer of the token,
// tokenExpiry and profile records.
type Manager struct {
	st     *store.Store
	logger *slog.Logger

	mu      sync.Mutex
	profile *google.Profile
	token   *oauth2.Token

	// Seams for tests; production values are set by NewManager.
	exchange     func(ctx context.Context, code string) (*oauth2.Token, error)
	fetchProfile func(ctx context.Context, token *oauth2.Token) (*google.Profile, error)
	now          func() time.Time
}

// NewManager creates a session manager backed by st.
func NewManager(st *store.Store, logger *slog.Logger) *Manager {
	return &Manager{
		st:       st,
		logger:   logging.WithService(logger, "session"),
		exchange: google.Exchange,
		fetchProfile: func(ctx context.Context, token *oauth2.Token) (*google.Profile, error) {
			return google.FetchProfile(ctx, google.HTTPClient(ctx, token))
		},
		now: time.Now,
	}
}

// Restore loads a persisted session. It succeeds only if a profile and an
// expiry exist and the current time is strictly before the expiry. Stale
// persisted data is not cleared here; only an explicit sign-out clears it.
func (m *Manager) Restore() (*google.Profile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	expiryData, ok, err := m.st.Get(store.KeyTokenExpiry)
	if err != nil || !ok {
		return nil, false
	}
	expiry, err := strconv.ParseInt(string(expiryData), 10, 64)
	if err != nil {
		return nil, false
	}
	if m.now().UnixMilli() >= expiry {
		m.logger.Debug("persisted token expired", logging.Operation("restore"))
		return nil, false
	}

	profileData, ok, err := m.st.Get(store.KeyProfile)
	if err != nil || !ok {
		return nil, false
	}
	var profile google.Profile
	if err := json.Unmarshal(profileData, &profile); err != nil {
		return nil, false
	}

	if tokenData, ok, err := m.st.Get(store.KeyToken); err == nil && ok {
		var tok oauth2.Token
		if err := json.Unmarshal(tokenData, &tok); err == nil {
			m.token = &tok
		}
	}

	m.profile = &profile
	m.logger.Info("session restored", logging.Operation("restore"))
	return &profile, true
}

// AuthURL returns the consent URL for the fixed scope set.
func (m *Manager) AuthURL() string {
	return google.AuthURL()
}

// Complete exchanges the pasted authorization code and finishes
// authentication. On any failure the caller must show the login screen
// again; nothing is retried.
func (m *Manager) Complete(ctx context.Context, code string) (*google.Profile, error) {
	token, err := m.exchange(ctx, code)
	if err != nil {
		m.logger.Error("auth code exchange failed", logging.Operation("complete"), logging.Err(err))
		return nil, err
	}
	return m.CompleteWithToken(ctx, token)
}

// CompleteWithToken persists the token and its expiry, fetches the user's
// profile with the token as bearer credential, and persists the profile.
func (m *Manager) CompleteWithToken(ctx context.Context, token *oauth2.Token) (*google.Profile, error) {
	tokenData, err := json.Marshal(token)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize token: %w", err)
	}
	if err := m.st.Put(store.KeyToken, tokenData); err != nil {
		return nil, err
	}

	expiry := token.Expiry
	if expiry.IsZero() {
		// Access tokens without an expiry hint get the provider default.
		expiry = m.now().Add(time.Hour)
	}
	if err := m.st.Put(store.KeyTokenExpiry, []byte(strconv.FormatInt(expiry.UnixMilli(), 10))); err != nil {
		return nil, err
	}

	profile, err := m.fetchProfile(ctx, token)
	if err != nil {
		m.logger.Error("profile fetch failed", logging.Operation("complete"), logging.Err(err))
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}

	profileData, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize profile: %w", err)
	}
	if err := m.st.Put(store.KeyProfile, profileData); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.profile = profile
	m.token = token
	m.mu.Unlock()

	m.logger.Info("authentication completed", logging.Operation("complete"), logging.Status(logging.StatusSuccess))
	return profile, nil
}

// Clear deletes all persisted session records and resets the in-memory
// session. Idempotent.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range []string{store.KeyToken, store.KeyTokenExpiry, store.KeyProfile, store.KeyInProgress} {
		if err := m.st.Delete(key); err != nil {
			m.logger.Error("failed to clear record", logging.Operation("clear"), logging.Err(err))
		}
	}
	m.profile = nil
	m.token = nil
	m.logger.Info("session cleared", logging.Operation("clear"))
}

// IsAuthenticated reports whether an in-memory profile is present. It is
// not time-based after the initial restore.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile != nil
}

// Profile returns the current in-memory profile, or nil.
func (m *Manager) Profile() *google.Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile
}

// HTTPClient returns an HTTP client authenticated with the session token.
func (m *Manager) HTTPClient(ctx context.Context) (*http.Client, error) {
	m.mu.Lock()
	token := m.token
	m.mu.Unlock()

	if token == nil {
		return nil, fmt.Errorf("not authenticated")
	}
	return google.HTTPClient(ctx, token), nil
}

// RecoverAuthError clears the session if err is an authorization failure
// and reports whether it did so. Every component that talks to the remote
// services routes failures through this so the recovery behavior is
// identical everywhere: clear once, prompt for a fresh sign-in, never
// silently retry.
func (m *Manager) RecoverAuthError(err error) bool {
	if !google.IsAuthError(err) {
		return false
	}
	m.logger.Info("authorization failure detected, clearing session", logging.Err(err))
	m.Clear()
	return true
}
