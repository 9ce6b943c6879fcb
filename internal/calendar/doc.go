// Package calendar provides a client for the Google Calendar API and the
// agenda grouping the dashboard renders.
//
// The client fetches a fixed 30-day window of upcoming events from the
// primary calendar, recurring events expanded to single instances and
// capped at 20 results. BuildAgenda groups the results into one section
// per calendar date.
//
// Example usage:
//
//	client, err := calendar.NewClient(ctx, httpClient)
//	if err != nil {
//	    return err
//	}
//	events, err := client.ListUpcoming(ctx)
//	if err != nil {
//	    return err
//	}
//	for _, day := range calendar.BuildAgenda(events) {
//	    fmt.Println(day.Header())
//	}
package calendar
