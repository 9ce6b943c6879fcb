package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	// windowDays is the fixed look-ahead window for upcoming events.
	windowDays = 30

	// maxUpcoming caps the number of events fetched per load.
	maxUpcoming = 20
)

// Client wraps the Google Calendar service
type Client struct {
	svc *calendar.Service
}

// NewClient creates a new Calendar client using the provided authenticated
// HTTP client.
func NewClient(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// ListUpcoming lists events on the primary calendar over the next 30 days:
// recurring events expanded to single instances, ordered by start time,
// capped at 20 results.
func (c *Client) ListUpcoming(ctx context.Context) ([]Event, error) {
	now := time.Now()

	result, err := c.svc.Events.List("primary").
		TimeMin(now.Format(time.RFC3339)).
		TimeMax(now.AddDate(0, 0, windowDays).Format(time.RFC3339)).
		ShowDeleted(false).
		SingleEvents(true).
		MaxResults(maxUpcoming).
		OrderBy("startTime").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	var events []Event
	for _, item := range result.Items {
		events = append(events, toEvent(item))
	}

	return events, nil
}
