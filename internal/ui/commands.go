package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"daydash/internal/calendar"
	"daydash/internal/logging"
	"daydash/internal/status"
)

const remoteTimeout = 30 * time.Second

func (m Model) connectCmd() tea.Cmd {
	connect := m.connect
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), remoteTimeout)
		defer cancel()

		svcs, err := connect(ctx)
		return servicesReadyMsg{svcs: svcs, err: err}
	}
}

func (m Model) completeAuthCmd(code string) tea.Cmd {
	sess := m.session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), remoteTimeout)
		defer cancel()

		profile, err := sess.Complete(ctx, code)
		return authDoneMsg{profile: profile, err: err}
	}
}

func (m Model) loadCalendarCmd() tea.Cmd {
	svc := m.calendarSvc
	logger := m.logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), remoteTimeout)
		defer cancel()

		start := time.Now()
		events, err := svc.ListUpcoming(ctx)
		if err != nil {
			logger.Error("failed to load calendar events",
				logging.Operation("load_calendar"),
				logging.Err(err))
			return calendarLoadedMsg{err: err}
		}
		logger.Debug("loaded calendar events",
			logging.Operation("load_calendar"),
			logging.Duration(time.Since(start)))
		return calendarLoadedMsg{days: calendar.BuildAgenda(events)}
	}
}

func (m Model) loadTasksCmd() tea.Cmd {
	eng := m.engine
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), remoteTimeout)
		defer cancel()

		views, err := eng.Load(ctx)
		return tasksLoadedMsg{views: views, err: err}
	}
}

func (m Model) commitStatusCmd(taskID string, next status.Status) tea.Cmd {
	eng := m.engine
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), remoteTimeout)
		defer cancel()

		err := eng.Commit(ctx, taskID, next)
		return statusCommittedMsg{taskID: taskID, err: err}
	}
}

func (m Model) createTaskCmd(title, notes string, due time.Time) tea.Cmd {
	eng := m.engine
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), remoteTimeout)
		defer cancel()

		created, err := eng.Create(ctx, title, notes, due)
		return taskCreatedMsg{created: created, err: err}
	}
}

func (m Model) fetchQuoteCmd() tea.Cmd {
	svc := m.quotes
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), remoteTimeout)
		defer cancel()

		q, err := svc.Random(ctx)
		return quoteFetchedMsg{quote: q, err: err}
	}
}
