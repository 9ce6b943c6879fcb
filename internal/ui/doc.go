// Package ui implements the dashboard shell: a Bubble Tea program that
// wires the session manager, the task status engine, the calendar agenda
// and the quote feature together.
//
// The shell moves between three screens. The login screen runs the
// consent flow (visit the printed URL, paste the authorization code).
// The loading screen covers the initial calendar fetch. The dashboard
// shows two tabs, Calendar and Tasks, plus a quote overlay and an
// add-task form. Any remote call that fails with an authorization error
// clears the session and returns to the login screen.
package ui
