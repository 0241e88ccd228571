package calendar

import (
	"context"
	"time"

	"smart-life-agent/internal/model"
)

// MockCalendarClient is a mock implementation of CalendarClient for testing
type MockCalendarClient struct {
	FetchUpcomingEventsFunc func(ctx context.Context, userEmail string, timeMin, timeMax time.Time, maxResults int64) ([]*model.Event, error)
}

func NewMockCalendarClient() *MockCalendarClient {
	return &MockCalendarClient{}
}

func (m *MockCalendarClient) FetchUpcomingEvents(ctx context.Context, userEmail string, timeMin, timeMax time.Time, maxResults int64) ([]*model.Event, error) {
	if m.FetchUpcomingEventsFunc != nil {
		return m.FetchUpcomingEventsFunc(ctx, userEmail, timeMin, timeMax, maxResults)
	}

	// Default mock behavior: no upcoming events
	return []*model.Event{}, nil
}
