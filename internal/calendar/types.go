package calendar

import (
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

// Event represents a calendar event as the dashboard renders it. Events
// are read-only from this system's perspective.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	AllDay      bool
	ColorID     string
	MeetLink    string
}

// DisplayTitle returns the event title, defaulting when absent.
func (e Event) DisplayTitle() string {
	if e.Summary == "" {
		return "Untitled Event"
	}
	return e.Summary
}

// TimeRange returns the rendered time range for the event, or "All day"
// when the event has no time component.
func (e Event) TimeRange() string {
	if e.AllDay {
		return "All day"
	}
	if e.End.IsZero() {
		return e.Start.Format("15:04")
	}
	return e.Start.Format("15:04") + " - " + e.End.Format("15:04")
}

// toEvent converts a Google Calendar event to an Event
func toEvent(event *calendar.Event) Event {
	result := Event{
		ID:          event.Id,
		Summary:     event.Summary,
		Description: event.Description,
		Location:    event.Location,
		ColorID:     event.ColorId,
		MeetLink:    event.HangoutLink,
	}

	// Parse start time; a date-only start marks an all-day event
	if event.Start != nil {
		if event.Start.DateTime != "" {
			if t, err := time.Parse(time.RFC3339, event.Start.DateTime); err == nil {
				result.Start = t
			}
		} else if event.Start.Date != "" {
			if t, err := time.ParseInLocation("2006-01-02", event.Start.Date, time.Local); err == nil {
				result.Start = t
				result.AllDay = true
			}
		}
	}

	// Parse end time
	if event.End != nil {
		if event.End.DateTime != "" {
			if t, err := time.Parse(time.RFC3339, event.End.DateTime); err == nil {
				result.End = t
			}
		} else if event.End.Date != "" {
			if t, err := time.ParseInLocation("2006-01-02", event.End.Date, time.Local); err == nil {
				result.End = t
			}
		}
	}

	return result
}
