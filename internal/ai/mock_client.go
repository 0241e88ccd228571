package ai

import "context"

// MockAIClient is a mock implementation of AIClient for testing
type MockAIClient struct {
	CompleteFunc func(ctx context.Context, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error)
}

func NewMockAIClient() *MockAIClient {
	return &MockAIClient{}
}

func (m *MockAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, systemPrompt, userPrompt, temperature, maxTokens)
	}

	// Default mock behavior: nothing actionable
	return "[]", nil
}
