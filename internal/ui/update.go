package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"daydash/internal/google"
	"daydash/internal/status"
)

// Update routes messages to the active screen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case servicesReadyMsg:
		if msg.err != nil {
			return m.handleRemoteFailure(msg.err, "Error connecting to Google: ")
		}
		m.calendarSvc = msg.svcs.Calendar
		m.engine = status.NewEngine(msg.svcs.Tasks, m.overlay, m.logger)
		m.calendarLoading = true
		return m, m.loadCalendarCmd()

	case authDoneMsg:
		m.authPending = false
		if msg.err != nil {
			m.loginNotice = "Sign-in failed: " + google.ErrorMessage(msg.err)
			m.codeInput.Focus()
			return m, nil
		}
		m.loginNotice = ""
		m.codeInput.Reset()
		m.screen = screenLoading
		return m, m.connectCmd()

	case calendarLoadedMsg:
		m.calendarLoading = false
		if msg.err != nil {
			if recovered, model, cmd := m.recoverAuth(msg.err); recovered {
				return model, cmd
			}
			m.calendarErr = "Error loading events: " + google.ErrorMessage(msg.err)
		} else {
			m.calendarErr = ""
			m.days = msg.days
		}
		cmd := tea.Cmd(nil)
		if m.screen == screenLoading {
			m.screen = screenDashboard
			m.tasksLoading = true
			cmd = m.loadTasksCmd()
		}
		return m, cmd

	case tasksLoadedMsg:
		m.tasksLoading = false
		if msg.err != nil {
			if recovered, model, cmd := m.recoverAuth(msg.err); recovered {
				return model, cmd
			}
			m.tasksErr = "Error loading tasks: " + google.ErrorMessage(msg.err)
			return m, nil
		}
		m.tasksErr = ""
		m.views = msg.views
		if m.cursor >= len(m.views) {
			m.cursor = len(m.views) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case statusCommittedMsg:
		if m.engine == nil {
			return m, nil
		}
		if msg.err != nil {
			if recovered, model, cmd := m.recoverAuth(msg.err); recovered {
				return model, cmd
			}
			m.engine.Revert(msg.taskID)
			m.alert = "Failed to update task: " + google.ErrorMessage(msg.err)
		}
		m.views = m.engine.Views()
		return m, nil

	case taskCreatedMsg:
		m.adding = false
		if msg.err != nil {
			if recovered, model, cmd := m.recoverAuth(msg.err); recovered {
				return model, cmd
			}
			m.alert = "Failed to add task: " + google.ErrorMessage(msg.err)
			return m, nil
		}
		if !msg.created {
			return m, nil
		}
		m.tasksLoading = true
		return m, m.loadTasksCmd()

	case quoteFetchedMsg:
		m.quote.loading = false
		if msg.err != nil {
			m.quote.err = "Oops! Couldn't fetch a quote. Try again later."
			return m, nil
		}
		m.quote.err = ""
		m.quote.quote = msg.quote
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.screen == screenLogin {
		var cmd tea.Cmd
		m.codeInput, cmd = m.codeInput.Update(msg)
		return m, cmd
	}
	if m.form.visible() {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenLogin:
		return m.handleLoginKey(msg)
	case screenLoading:
		if msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	default:
		return m.handleDashboardKey(msg)
	}
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.authPending {
		return m, nil
	}
	switch msg.Type {
	case tea.KeyEnter:
		code := strings.TrimSpace(m.codeInput.Value())
		if code == "" {
			return m, nil
		}
		m.authPending = true
		m.loginNotice = ""
		return m, m.completeAuthCmd(code)
	case tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.codeInput, cmd = m.codeInput.Update(msg)
	return m, cmd
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.quote.visible {
		switch msg.String() {
		case "i", "esc", "q":
			m.quote.visible = false
		case "r":
			m.quote.loading = true
			m.quote.err = ""
			return m, m.fetchQuoteCmd()
		}
		return m, nil
	}

	if m.form.visible() {
		return m.handleFormKey(msg)
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "tab":
		return m.switchTab(1 - m.activeTab)
	case "1":
		return m.switchTab(tabCalendar)
	case "2":
		return m.switchTab(tabTasks)

	case "r":
		return m.refreshActiveTab()

	case "j", "down":
		if m.activeTab == tabTasks && m.cursor < len(m.views)-1 {
			m.cursor++
		}
		return m, nil
	case "k", "up":
		if m.activeTab == tabTasks && m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case " ":
		if m.activeTab != tabTasks || m.adding || m.engine == nil {
			return m, nil
		}
		v, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		next := v.Status.Next()
		m.engine.Apply(v.Task.ID, next)
		m.views = m.engine.Views()
		m.alert = ""
		return m, m.commitStatusCmd(v.Task.ID, next)

	case "a":
		if m.activeTab != tabTasks || m.adding || m.engine == nil {
			return m, nil
		}
		m.form.reset()
		m.form.open = true
		m.alert = ""
		return m, textinput.Blink

	case "i":
		m.quote.visible = true
		m.quote.loading = true
		m.quote.err = ""
		return m, m.fetchQuoteCmd()

	case "s":
		m.session.Clear()
		return m.toLogin(""), nil
	}

	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.form.open = false
		return m, nil
	case tea.KeyTab:
		m.form.cycle(1)
		return m, nil
	case tea.KeyShiftTab:
		m.form.cycle(-1)
		return m, nil
	case tea.KeyEnter:
		title := strings.TrimSpace(m.form.title.Value())
		if title == "" {
			m.form.open = false
			return m, nil
		}
		due, ok := m.form.parseDue()
		if !ok {
			m.form.err = "Due date must look like 2025-01-31"
			return m, nil
		}
		m.form.open = false
		m.adding = true
		return m, m.createTaskCmd(title, strings.TrimSpace(m.form.notes.Value()), due)
	}
	return m, m.form.update(msg)
}

func (m Model) switchTab(t tab) (tea.Model, tea.Cmd) {
	if m.activeTab == t {
		return m, nil
	}
	m.activeTab = t
	return m.refreshActiveTab()
}

func (m Model) refreshActiveTab() (tea.Model, tea.Cmd) {
	switch m.activeTab {
	case tabCalendar:
		if m.calendarSvc == nil {
			return m, nil
		}
		m.calendarLoading = true
		m.calendarErr = ""
		return m, m.loadCalendarCmd()
	default:
		if m.engine == nil {
			return m, nil
		}
		m.tasksLoading = true
		m.tasksErr = ""
		return m, m.loadTasksCmd()
	}
}

// recoverAuth checks a remote error for an expired or revoked
// credential. When the session recovers (clears itself), the shell
// drops back to the login screen.
func (m Model) recoverAuth(err error) (bool, tea.Model, tea.Cmd) {
	if !m.session.RecoverAuthError(err) {
		return false, m, nil
	}
	model := m.toLogin("Your session has expired. Please sign in again.")
	return true, model, textinput.Blink
}

func (m Model) handleRemoteFailure(err error, prefix string) (tea.Model, tea.Cmd) {
	if recovered, model, cmd := m.recoverAuth(err); recovered {
		return model, cmd
	}
	return m.toLogin(prefix + google.ErrorMessage(err)), textinput.Blink
}

func (m Model) toLogin(notice string) Model {
	if m.overlay != nil {
		m.overlay.Reset()
	}
	m.screen = screenLogin
	m.loginNotice = notice
	m.calendarSvc = nil
	m.engine = nil
	m.days = nil
	m.views = nil
	m.cursor = 0
	m.alert = ""
	m.calendarErr = ""
	m.tasksErr = ""
	m.adding = false
	m.form.open = false
	m.quote.visible = false
	m.codeInput.Reset()
	m.codeInput.Focus()
	return m
}
