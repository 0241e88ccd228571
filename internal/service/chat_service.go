package service

import (
	"context"
	"fmt"

	"smart-life-agent/internal/logger"
)

const chatSystemPrompt = "You are Smart Life Agent, a personal productivity assistant. " +
	"You extract actionable tasks from the user's email, check their calendar for conflicts, " +
	"and keep a priority board of pending work. " +
	"Be friendly and concise: answer in 2-3 sentences unless asked for detail."

const chatFallbackReply = "Sorry, I'm having trouble responding right now. Please try again in a moment."

const (
	chatTemperature = 0.7
	chatMaxTokens   = 500
)

type chatService struct {
	aiClient AIClient
	logger   *logger.Logger
}

func NewChatService(aiClient AIClient, logger *logger.Logger) ChatService {
	return &chatService{
		aiClient: aiClient,
		logger:   logger,
	}
}

// Chat answers a single assistant message, optionally grounded on a context
// note supplied by the client (current tasks, upcoming events). Provider
// failures degrade to a canned reply so the assistant never errors out at
// the user.
func (s *chatService) Chat(ctx context.Context, userMessage, contextNote string) string {
	content := userMessage
	if contextNote != "" {
		content = fmt.Sprintf("Here is my current context:\n%s\n\n%s", contextNote, userMessage)
	}

	reply, err := s.aiClient.Complete(ctx, chatSystemPrompt, content, chatTemperature, chatMaxTokens)
	if err != nil {
		s.logger.Error("Chat completion failed:", err)
		return chatFallbackReply
	}
	return reply
}
