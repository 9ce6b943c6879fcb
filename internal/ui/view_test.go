package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"daydash/internal/calendar"
)

func TestCalendarViewShowsTruncatedDescription(t *testing.T) {
	long := strings.Repeat("a", 150)
	m := Model{days: []calendar.Day{{
		Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local),
		Events: []calendar.Event{{
			Summary:     "Planning",
			Description: long,
			AllDay:      true,
		}},
	}}}

	out := m.viewCalendar()
	assert.Contains(t, out, strings.Repeat("a", 100)+"...")
	assert.NotContains(t, out, strings.Repeat("a", 101))
}

func TestCalendarViewShowsMeetJoinURL(t *testing.T) {
	m := Model{days: []calendar.Day{{
		Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local),
		Events: []calendar.Event{{
			Summary:  "Standup",
			MeetLink: "https://meet.google.com/abc-defg-hij",
			AllDay:   true,
		}},
	}}}

	out := m.viewCalendar()
	assert.Contains(t, out, "Join: https://meet.google.com/abc-defg-hij")
}

func TestCalendarViewOmitsAbsentDetails(t *testing.T) {
	m := Model{days: []calendar.Day{{
		Date:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local),
		Events: []calendar.Event{{Summary: "Standup", AllDay: true}},
	}}}

	out := m.viewCalendar()
	assert.NotContains(t, out, "Join:")
	assert.Contains(t, out, "Standup")
}
