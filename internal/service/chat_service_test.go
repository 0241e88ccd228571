package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"smart-life-agent/internal/ai"
	"smart-life-agent/internal/logger"
	"smart-life-agent/internal/service"
)

func TestChatServiceReturnsReply(t *testing.T) {
	// Setup
	mockAIClient := ai.NewMockAIClient()
	mockAIClient.CompleteFunc = func(ctx context.Context, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error) {
		return "You have two tasks due this week.", nil
	}
	chatService := service.NewChatService(mockAIClient, logger.New())

	// Execute
	reply := chatService.Chat(context.Background(), "What's on my plate?", "")

	// Verify
	assert.Equal(t, "You have two tasks due this week.", reply)
}

func TestChatServicePrependsContextNote(t *testing.T) {
	// Setup
	var gotPrompt string
	mockAIClient := ai.NewMockAIClient()
	mockAIClient.CompleteFunc = func(ctx context.Context, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error) {
		gotPrompt = userPrompt
		return "ok", nil
	}
	chatService := service.NewChatService(mockAIClient, logger.New())

	// Execute
	chatService.Chat(context.Background(), "Anything urgent?", "Tasks: Pay rent (high)")

	// Verify
	assert.True(t, strings.HasPrefix(gotPrompt, "Here is my current context:"))
	assert.Contains(t, gotPrompt, "Tasks: Pay rent (high)")
	assert.Contains(t, gotPrompt, "Anything urgent?")
}

func TestChatServiceFallsBackOnProviderError(t *testing.T) {
	// Setup
	mockAIClient := ai.NewMockAIClient()
	mockAIClient.CompleteFunc = func(ctx context.Context, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error) {
		return "", errors.New("provider down")
	}
	chatService := service.NewChatService(mockAIClient, logger.New())

	// Execute
	reply := chatService.Chat(context.Background(), "What's on my plate?", "")

	// Verify: the assistant degrades, it never errors at the user
	assert.NotEmpty(t, reply)
	assert.Contains(t, reply, "try again")
}
