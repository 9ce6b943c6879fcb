package ui

import (
	"time"
)

// notesLimit is where task notes and event descriptions get cut off.
const notesLimit = 100

// Truncate cuts text at max runes and appends an ellipsis marker when it
// was cut.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

// DueBadge renders a task due date relative to now: "Today" or "Tomorrow"
// for proximate dates, otherwise a short date with the year only when it
// differs from the current year. A zero due date renders nothing.
func DueBadge(due, now time.Time) string {
	if due.IsZero() {
		return ""
	}
	if sameDay(due, now) {
		return "Today"
	}
	if sameDay(due, now.AddDate(0, 0, 1)) {
		return "Tomorrow"
	}
	if due.Year() != now.Year() {
		return due.Format("Jan 2, 2006")
	}
	return due.Format("Jan 2")
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
