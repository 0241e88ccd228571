package gmail

import (
	"context"

	"smart-life-agent/internal/model"
)

// MockGmailClient is a mock implementation of GmailClient for testing
type MockGmailClient struct {
	FetchRecentEmailsFunc func(ctx context.Context, userEmail string, maxResults int64) ([]*model.Email, error)
}

func NewMockGmailClient() *MockGmailClient {
	return &MockGmailClient{}
}

func (m *MockGmailClient) FetchRecentEmails(ctx context.Context, userEmail string, maxResults int64) ([]*model.Email, error) {
	if m.FetchRecentEmailsFunc != nil {
		return m.FetchRecentEmailsFunc(ctx, userEmail, maxResults)
	}

	// Default mock behavior: empty mailbox
	return []*model.Email{}, nil
}
