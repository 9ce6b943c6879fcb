package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"daydash/internal/calendar"
	"daydash/internal/logging"
	"daydash/internal/quotes"
	"daydash/internal/session"
	"daydash/internal/status"
)

// CalendarService is the slice of the calendar client the shell consumes.
type CalendarService interface {
	ListUpcoming(ctx context.Context) ([]calendar.Event, error)
}

// QuoteService is the slice of the quotes client the shell consumes.
type QuoteService interface {
	Random(ctx context.Context) (quotes.Quote, error)
}

// Services bundles the remote clients that exist only once a session
// token is available.
type Services struct {
	Calendar CalendarService
	Tasks    status.Remote
}

// Connector builds the remote clients from the current session.
type Connector func(ctx context.Context) (Services, error)

type screen int

const (
	screenLogin screen = iota
	screenLoading
	screenDashboard
)

type tab int

const (
	tabCalendar tab = iota
	tabTasks
)

// quoteState is the quote overlay.
type quoteState struct {
	visible bool
	loading bool
	quote   quotes.Quote
	err     string
}

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	session *session.Manager
	overlay *status.Overlay
	connect Connector
	quotes  QuoteService
	logger  *slog.Logger

	// Built after authentication.
	calendarSvc CalendarService
	engine      *status.Engine

	screen    screen
	activeTab tab
	width     int
	height    int
	quitting  bool

	spin spinner.Model

	// Login screen
	codeInput   textinput.Model
	authPending bool
	loginNotice string

	// Calendar tab
	days            []calendar.Day
	calendarErr     string
	calendarLoading bool

	// Tasks tab
	views        []status.View
	tasksErr     string
	tasksLoading bool
	cursor       int
	adding       bool
	alert        string

	form  addForm
	quote quoteState
}

// New creates the shell. If a persisted session restores, the model
// starts on the loading screen and connects immediately; otherwise it
// starts on the login screen.
func New(sess *session.Manager, overlay *status.Overlay, connect Connector, quoteSvc QuoteService, logger *slog.Logger) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	code := textinput.New()
	code.Placeholder = "paste authorization code"
	code.CharLimit = 256
	code.Width = 48

	m := Model{
		session:   sess,
		overlay:   overlay,
		connect:   connect,
		quotes:    quoteSvc,
		logger:    logging.WithService(logger, "ui"),
		spin:      sp,
		codeInput: code,
		form:      newAddForm(),
	}

	if _, ok := sess.Restore(); ok {
		m.screen = screenLoading
	} else {
		m.screen = screenLogin
		m.codeInput.Focus()
	}

	return m
}

// Init starts the spinner and, for a restored session, the connection.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	if m.screen == screenLoading {
		cmds = append(cmds, m.connectCmd())
	}
	if m.screen == screenLogin {
		cmds = append(cmds, textinput.Blink)
	}
	return tea.Batch(cmds...)
}

// selectedTask returns the task view under the cursor.
func (m Model) selectedTask() (status.View, bool) {
	if m.cursor < 0 || m.cursor >= len(m.views) {
		return status.View{}, false
	}
	return m.views[m.cursor], true
}
