package ui

import (
	"daydash/internal/calendar"
	"daydash/internal/google"
	"daydash/internal/quotes"
	"daydash/internal/status"
)

// servicesReadyMsg carries the remote clients built after authentication.
type servicesReadyMsg struct {
	svcs Services
	err  error
}

// authDoneMsg reports the outcome of the consent flow.
type authDoneMsg struct {
	profile *google.Profile
	err     error
}

// calendarLoadedMsg carries the grouped agenda for the calendar tab.
type calendarLoadedMsg struct {
	days []calendar.Day
	err  error
}

// tasksLoadedMsg carries the task views for the tasks tab.
type tasksLoadedMsg struct {
	views []status.View
	err   error
}

// statusCommittedMsg reports the remote half of a status change.
type statusCommittedMsg struct {
	taskID string
	err    error
}

// taskCreatedMsg reports the outcome of an add-task submission.
type taskCreatedMsg struct {
	created bool
	err     error
}

// quoteFetchedMsg carries the quote for the overlay.
type quoteFetchedMsg struct {
	quote quotes.Quote
	err   error
}
