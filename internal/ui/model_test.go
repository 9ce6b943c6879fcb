package ui

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"daydash/internal/calendar"
	"daydash/internal/google"
	"daydash/internal/logging"
	"daydash/internal/quotes"
	"daydash/internal/session"
	"daydash/internal/status"
	"daydash/internal/store"
	"daydash/internal/tasks"
	"daydash/internal/testutil"
)

type fakeCalendar struct {
	events []calendar.Event
	err    error
}

func (f *fakeCalendar) ListUpcoming(ctx context.Context) ([]calendar.Event, error) {
	return f.events, f.err
}

type fakeQuotes struct {
	quote quotes.Quote
	err   error
}

func (f *fakeQuotes) Random(ctx context.Context) (quotes.Quote, error) {
	return f.quote, f.err
}

// newRestoredModel builds a model backed by a persisted session so that it
// starts past the login screen.
func newRestoredModel(t *testing.T, remote *testutil.FakeRemote, cal *fakeCalendar) (Model, *store.Store) {
	t.Helper()

	st, err := store.Open(t.TempDir())
	require.NoError(t, err)

	profile, err := json.Marshal(google.Profile{ID: "u1", Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	require.NoError(t, st.Put(store.KeyProfile, profile))

	expiry := time.Now().Add(time.Hour).UnixMilli()
	require.NoError(t, st.Put(store.KeyTokenExpiry, []byte(strconv.FormatInt(expiry, 10))))

	logger := logging.Discard()
	sess := session.NewManager(st, logger)
	overlay := status.LoadOverlay(st)

	connect := func(ctx context.Context) (Services, error) {
		return Services{Calendar: cal, Tasks: remote}, nil
	}

	m := New(sess, overlay, connect, &fakeQuotes{}, logger)
	require.Equal(t, screenLoading, m.screen, "a persisted session should skip the login screen")
	return m, st
}

// step feeds a message and returns the updated model and the resulting
// command for synchronous execution.
func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(Model)
	require.True(t, ok)
	return model, cmd
}

// toDashboard drives a restored model through connect, calendar load and
// task load.
func toDashboard(t *testing.T, m Model, remote *testutil.FakeRemote, cal *fakeCalendar) Model {
	t.Helper()

	m, cmd := step(t, m, servicesReadyMsg{svcs: Services{Calendar: cal, Tasks: remote}})
	require.NotNil(t, cmd)
	m, cmd = step(t, m, cmd())
	require.Equal(t, screenDashboard, m.screen)
	require.NotNil(t, cmd, "reaching the dashboard should trigger the task load")
	m, _ = step(t, m, cmd())
	return m
}

func TestExpiredCredentialDropsToLogin(t *testing.T) {
	remote := testutil.NewFakeRemote()
	cal := &fakeCalendar{err: &googleapi.Error{Code: 403, Message: "insufficient permissions"}}
	m, st := newRestoredModel(t, remote, cal)

	m, cmd := step(t, m, servicesReadyMsg{svcs: Services{Calendar: cal, Tasks: remote}})
	require.NotNil(t, cmd)
	m, _ = step(t, m, cmd())

	assert.Equal(t, screenLogin, m.screen)
	assert.Equal(t, "Your session has expired. Please sign in again.", m.loginNotice)
	assert.Nil(t, m.engine)

	for _, key := range []string{store.KeyToken, store.KeyTokenExpiry, store.KeyProfile, store.KeyInProgress} {
		_, ok, err := st.Get(key)
		require.NoError(t, err)
		assert.False(t, ok, "record %q should be gone after recovery", key)
	}
}

func TestCalendarErrorStaysOnDashboard(t *testing.T) {
	remote := testutil.NewFakeRemote()
	cal := &fakeCalendar{err: context.DeadlineExceeded}
	m, _ := newRestoredModel(t, remote, cal)

	m, cmd := step(t, m, servicesReadyMsg{svcs: Services{Calendar: cal, Tasks: remote}})
	m, _ = step(t, m, cmd())

	assert.Equal(t, screenDashboard, m.screen)
	assert.Contains(t, m.calendarErr, "Error loading events:")
}

func TestStatusCycleCommitsOptimistically(t *testing.T) {
	remote := testutil.NewFakeRemote()
	remote.AddTask("list-1", tasks.Task{ID: "t1", Title: "write report", Status: tasks.StatusNeedsAction})
	cal := &fakeCalendar{}

	m, _ := newRestoredModel(t, remote, cal)
	m = toDashboard(t, m, remote, cal)
	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	require.NotNil(t, cmd)
	m, _ = step(t, m, cmd())

	// Space applies the next status locally before the remote write lands.
	m, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")})
	require.NotNil(t, cmd)
	require.Len(t, m.views, 1)
	assert.Equal(t, status.InProgress, m.views[0].Status)

	m, _ = step(t, m, cmd())
	assert.Equal(t, status.InProgress, m.views[0].Status)
	assert.Empty(t, m.alert)
}

func TestFailedCommitRollsBack(t *testing.T) {
	remote := testutil.NewFakeRemote()
	remote.AddTask("list-1", tasks.Task{ID: "t1", Title: "write report", Status: tasks.StatusNeedsAction})
	cal := &fakeCalendar{}

	m, _ := newRestoredModel(t, remote, cal)
	m = toDashboard(t, m, remote, cal)
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})

	// Advance to completed first so the failing write targets a remote
	// transition.
	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")})
	m, _ = step(t, m, cmd())
	require.Equal(t, status.InProgress, m.views[0].Status)

	remote.PatchStatusErr = context.DeadlineExceeded
	m, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")})
	require.Equal(t, status.Completed, m.views[0].Status, "the cycle applies before the write")

	m, _ = step(t, m, cmd())
	assert.Equal(t, status.InProgress, m.views[0].Status, "a failed write restores the prior status")
	assert.Contains(t, m.alert, "Failed to update task:")
}

func TestBlankTitleClosesFormWithoutInsert(t *testing.T) {
	remote := testutil.NewFakeRemote()
	cal := &fakeCalendar{}

	m, _ := newRestoredModel(t, remote, cal)
	m = toDashboard(t, m, remote, cal)
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	require.True(t, m.form.visible())

	m.form.title.SetValue("   ")
	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.form.visible())
	assert.Nil(t, cmd)
	assert.Zero(t, remote.InsertCalls)
}

func TestSignOutResetsOverlay(t *testing.T) {
	remote := testutil.NewFakeRemote()
	remote.AddTask("list-1", tasks.Task{ID: "t1", Title: "write report", Status: tasks.StatusNeedsAction})
	cal := &fakeCalendar{}

	m, st := newRestoredModel(t, remote, cal)
	require.NoError(t, m.overlay.Mark("t1"))
	m = toDashboard(t, m, remote, cal)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	assert.Equal(t, screenLogin, m.screen)

	// The in-memory overlay is empty, so a flag set in the next session
	// cannot drag the old ids back into the persisted record.
	assert.Equal(t, 0, m.overlay.Len())
	_, present, err := st.Get(store.KeyInProgress)
	require.NoError(t, err)
	assert.False(t, present)
}
