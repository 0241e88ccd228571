package service

import (
	"context"
	"time"

	"smart-life-agent/internal/model"
	"smart-life-agent/internal/prompt"
)

type AuthService interface {
	GetOrCreateUser(ctx context.Context, googleID, email, name, accessToken, refreshToken string, tokenExpiry time.Time) (*model.User, error)
	GetUser(ctx context.Context, userID string) (*model.User, error)
}

// TaskService is the task store adapter: it owns dedup-aware bulk creation
// and the per-user task operations backed by the repository.
type TaskService interface {
	CreateBulk(ctx context.Context, userEmail string, drafts []model.TaskDraft) ([]*model.Task, error)
	GetAllTasks(ctx context.Context, userEmail string) ([]*model.Task, error)
	GetExistingTitles(ctx context.Context, userEmail string) ([]string, error)
	UpdatePriorityByTitle(ctx context.Context, userEmail, title, priority string) (bool, error)
	CompleteTask(ctx context.Context, userEmail, taskID string) (bool, error)
	DeleteTask(ctx context.Context, userEmail, taskID string) (bool, error)
	DeleteAllTasks(ctx context.Context, userEmail string) (int, error)
}

// AgentService runs the end-to-end extraction pipeline for one user.
type AgentService interface {
	Run(ctx context.Context, userEmail string) (*model.RunSummary, error)
}

// ChatService answers free-form assistant messages. It degrades to a canned
// reply on provider failure rather than returning an error.
type ChatService interface {
	Chat(ctx context.Context, userMessage, contextNote string) string
}

// TaskExtractor turns a built prompt context into task drafts, failing soft.
type TaskExtractor interface {
	Extract(ctx context.Context, promptContext *prompt.Context) []model.TaskDraft
}

// GmailClient interface for fetching recent messages from Gmail
type GmailClient interface {
	FetchRecentEmails(ctx context.Context, userEmail string, maxResults int64) ([]*model.Email, error)
}

// CalendarClient interface for fetching upcoming events from Google Calendar
type CalendarClient interface {
	FetchUpcomingEvents(ctx context.Context, userEmail string, timeMin, timeMax time.Time, maxResults int64) ([]*model.Event, error)
}

// AIClient interface for the language-model collaborator. It owns transport
// only; callers own parsing and validation of the returned text.
type AIClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error)
}
