package calendar

import (
	"sort"
	"time"
)

// Day is one agenda section: all events whose start falls on Date, in the
// order the query returned them.
type Day struct {
	Date   time.Time
	Events []Event
}

// Header returns the section header for the day.
func (d Day) Header() string {
	return d.Date.Format("Monday, January 2")
}

// BuildAgenda groups events by the calendar date of their start, with the
// sections in chronological order. Within a day the query order is
// preserved.
func BuildAgenda(events []Event) []Day {
	byDate := make(map[time.Time][]Event)
	for _, e := range events {
		d := dateOf(e.Start)
		byDate[d] = append(byDate[d], e)
	}

	dates := make([]time.Time, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	days := make([]Day, 0, len(dates))
	for _, d := range dates {
		days = append(days, Day{Date: d, Events: byDate[d]})
	}
	return days
}

// dateOf truncates t to its calendar date.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
