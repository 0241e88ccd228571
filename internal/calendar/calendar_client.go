// Package calendar adapts the Google Calendar API to the read-only event
// source the pipeline consumes. Events are context for conflict avoidance
// only; nothing here ever writes to the user's calendar.
package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"smart-life-agent/internal/logger"
	"smart-life-agent/internal/model"
	"smart-life-agent/internal/service"
)

type calendarClient struct {
	client *calendar.Service
	logger *logger.Logger
}

func NewCalendarClient(accessToken string, logger *logger.Logger) (service.CalendarClient, error) {
	httpClient := &http.Client{
		Transport: &oauth2Transport{token: accessToken},
	}

	calendarService, err := calendar.NewService(context.Background(), option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &calendarClient{
		client: calendarService,
		logger: logger,
	}, nil
}

type oauth2Transport struct {
	token string
}

func (t *oauth2Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)
	return http.DefaultTransport.RoundTrip(req)
}

// FetchUpcomingEvents lists single events on the primary calendar between
// timeMin and timeMax, ordered by start time. All-day events carry a bare
// date in Start/End instead of a timestamp.
func (c *calendarClient) FetchUpcomingEvents(ctx context.Context, userEmail string, timeMin, timeMax time.Time, maxResults int64) ([]*model.Event, error) {
	result, err := c.client.Events.List("primary").
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		MaxResults(maxResults).
		SingleEvents(true).
		OrderBy("startTime").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	var events []*model.Event
	for _, item := range result.Items {
		title := item.Summary
		if title == "" {
			title = "(No Title)"
		}
		events = append(events, &model.Event{
			ID:    item.Id,
			Title: title,
			Start: eventTime(item.Start),
			End:   eventTime(item.End),
		})
	}

	c.logger.Info("Fetched", len(events), "upcoming calendar events for:", userEmail)
	return events, nil
}

func eventTime(t *calendar.EventDateTime) string {
	if t == nil {
		return ""
	}
	if t.DateTime != "" {
		return t.DateTime
	}
	return t.Date
}
