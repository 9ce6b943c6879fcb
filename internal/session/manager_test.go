package session

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"daydash/internal/google"
	"daydash/internal/logging"
	"daydash/internal/store"
)

func newTestManager(t *testing.T) (*Manager, *store.Store) {
	t.Helper()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	return NewManager(st, logging.Discard()), st
}

func persistSession(t *testing.T, st *store.Store, profile google.Profile, expiry time.Time) {
	t.Helper()
	data, err := json.Marshal(profile)
	require.NoError(t, err)
	require.NoError(t, st.Put(store.KeyProfile, data))
	require.NoError(t, st.Put(store.KeyTokenExpiry, []byte(strconv.FormatInt(expiry.UnixMilli(), 10))))
}

func TestRestoreWithUnexpiredToken(t *testing.T) {
	m, st := newTestManager(t)
	persistSession(t, st, google.Profile{Name: "Ada", Email: "ada@example.com"}, time.Now().Add(30*time.Minute))

	profile, ok := m.Restore()
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", profile.Email)
	assert.True(t, m.IsAuthenticated())
}

func TestRestoreWithExpiredToken(t *testing.T) {
	m, st := newTestManager(t)
	persistSession(t, st, google.Profile{Email: "ada@example.com"}, time.Now().Add(-time.Minute))

	_, ok := m.Restore()
	assert.False(t, ok)
	assert.False(t, m.IsAuthenticated())

	// Stale records are only removed by an explicit sign-out.
	_, present, err := st.Get(store.KeyProfile)
	require.NoError(t, err)
	assert.True(t, present)
}

func TestRestoreAtExactExpiryFails(t *testing.T) {
	m, st := newTestManager(t)
	now := time.Now()
	m.now = func() time.Time { return now }
	persistSession(t, st, google.Profile{Email: "ada@example.com"}, now)

	_, ok := m.Restore()
	assert.False(t, ok)
}

func TestRestoreWithNothingPersisted(t *testing.T) {
	m, _ := newTestManager(t)
	_, ok := m.Restore()
	assert.False(t, ok)
}

func TestCompletePersistsTokenExpiryAndProfile(t *testing.T) {
	m, st := newTestManager(t)
	expiry := time.Now().Add(55 * time.Minute)
	m.exchange = func(ctx context.Context, code string) (*oauth2.Token, error) {
		assert.Equal(t, "auth-code", code)
		return &oauth2.Token{AccessToken: "at", Expiry: expiry}, nil
	}
	m.fetchProfile = func(ctx context.Context, token *oauth2.Token) (*google.Profile, error) {
		return &google.Profile{ID: "sub-1", Name: "Ada", Email: "ada@example.com"}, nil
	}

	profile, err := m.Complete(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.Name)
	assert.True(t, m.IsAuthenticated())

	expiryData, ok, err := st.Get(store.KeyTokenExpiry)
	require.NoError(t, err)
	require.True(t, ok)
	millis, err := strconv.ParseInt(string(expiryData), 10, 64)
	require.NoError(t, err)
	assert.Equal(t, expiry.UnixMilli(), millis)

	_, ok, err = st.Get(store.KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCompleteProfileFetchFailure(t *testing.T) {
	m, _ := newTestManager(t)
	m.exchange = func(ctx context.Context, code string) (*oauth2.Token, error) {
		return &oauth2.Token{AccessToken: "at", Expiry: time.Now().Add(time.Hour)}, nil
	}
	m.fetchProfile = func(ctx context.Context, token *oauth2.Token) (*google.Profile, error) {
		return nil, errors.New("userinfo request failed with status 500")
	}

	_, err := m.Complete(context.Background(), "auth-code")
	require.Error(t, err)
	assert.False(t, m.IsAuthenticated())
}

func TestClearIsIdempotent(t *testing.T) {
	m, st := newTestManager(t)
	persistSession(t, st, google.Profile{Email: "ada@example.com"}, time.Now().Add(time.Hour))
	require.NoError(t, st.Put(store.KeyInProgress, []byte(`{"t1":"in_progress"}`)))

	_, ok := m.Restore()
	require.True(t, ok)

	m.Clear()
	m.Clear()

	assert.False(t, m.IsAuthenticated())
	for _, key := range []string{store.KeyToken, store.KeyTokenExpiry, store.KeyProfile, store.KeyInProgress} {
		_, present, err := st.Get(key)
		require.NoError(t, err)
		assert.False(t, present, "record %s should be gone", key)
	}
}

func TestRecoverAuthErrorClearsSessionOnce(t *testing.T) {
	m, st := newTestManager(t)
	persistSession(t, st, google.Profile{Email: "ada@example.com"}, time.Now().Add(time.Hour))
	_, ok := m.Restore()
	require.True(t, ok)

	recovered := m.RecoverAuthError(&googleapi.Error{Code: 403, Message: "Forbidden"})
	assert.True(t, recovered)
	assert.False(t, m.IsAuthenticated())

	_, present, err := st.Get(store.KeyProfile)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestRecoverAuthErrorIgnoresOtherErrors(t *testing.T) {
	m, st := newTestManager(t)
	persistSession(t, st, google.Profile{Email: "ada@example.com"}, time.Now().Add(time.Hour))
	_, ok := m.Restore()
	require.True(t, ok)

	recovered := m.RecoverAuthError(errors.New("dial tcp: connection refused"))
	assert.False(t, recovered)
	assert.True(t, m.IsAuthenticated())
}
