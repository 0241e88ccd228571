package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"smart-life-agent/internal/ai"
	"smart-life-agent/internal/calendar"
	"smart-life-agent/internal/extractor"
	"smart-life-agent/internal/gmail"
	"smart-life-agent/internal/logger"
	"smart-life-agent/internal/model"
	"smart-life-agent/internal/repository/memory"
	"smart-life-agent/internal/service"
)

func TestAgentServiceRunCreatesTasks(t *testing.T) {
	// Setup
	taskRepo := memory.NewInMemoryTaskRepository()
	mockGmailClient := gmail.NewMockGmailClient()
	mockCalendarClient := calendar.NewMockCalendarClient()
	mockAIClient := ai.NewMockAIClient()
	appLogger := logger.New()

	// Two actionable emails plus one that the keyword gate drops
	mockGmailClient.FetchRecentEmailsFunc = func(ctx context.Context, userEmail string, maxResults int64) ([]*model.Email, error) {
		return []*model.Email{
			model.NewEmail("msg_1", "prof@university.example", "Submit assignment", "Due Friday", "", time.Now()),
			model.NewEmail("msg_2", "friend@mail.example", "Hello there", "Just saying hi", "", time.Now()),
			model.NewEmail("msg_3", "billing@provider.example", "Invoice attached", "Pending payment", "", time.Now()),
		}, nil
	}

	mockCalendarClient.FetchUpcomingEventsFunc = func(ctx context.Context, userEmail string, timeMin, timeMax time.Time, maxResults int64) ([]*model.Event, error) {
		return []*model.Event{{ID: "evt_1", Title: "Team sync", Start: "2025-06-03T10:00:00Z"}}, nil
	}

	var gotPrompt string
	mockAIClient.CompleteFunc = func(ctx context.Context, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error) {
		gotPrompt = userPrompt
		return `[
			{"title": "Submit assignment", "description": "Upload the report", "date": "2025-06-06", "priority": "high", "category": "Deadline"},
			{"title": "Pay invoice", "description": "Settle the pending payment", "date": "2025-06-10", "priority": "medium", "category": "Action Item"}
		]`, nil
	}

	taskService := service.NewTaskService(taskRepo, appLogger)
	agentService := service.NewAgentService(taskService, mockGmailClient, mockCalendarClient, extractor.New(mockAIClient, appLogger), appLogger)

	// Execute
	summary, err := agentService.Run(context.Background(), "test@example.com")

	// Verify
	assert.NoError(t, err)
	assert.Equal(t, model.RunStatusTasksCreated, summary.Status)
	assert.Equal(t, 3, summary.EmailsScanned)
	assert.Equal(t, 2, summary.EmailsMatched)
	assert.Equal(t, 2, summary.TasksExtracted)
	assert.Equal(t, 2, summary.TasksCreated)
	assert.False(t, summary.CalendarDegraded)
	assert.Len(t, summary.Tasks, 2)

	// The dropped email never reaches the prompt; calendar context does
	assert.Contains(t, gotPrompt, "Subject: Submit assignment")
	assert.NotContains(t, gotPrompt, "Hello there")
	assert.Contains(t, gotPrompt, "Team sync")

	tasks, err := taskService.GetAllTasks(context.Background(), "test@example.com")
	assert.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestAgentServiceRunNoMatchingEmails(t *testing.T) {
	// Setup
	taskRepo := memory.NewInMemoryTaskRepository()
	mockGmailClient := gmail.NewMockGmailClient()
	mockCalendarClient := calendar.NewMockCalendarClient()
	mockAIClient := ai.NewMockAIClient()
	appLogger := logger.New()

	mockGmailClient.FetchRecentEmailsFunc = func(ctx context.Context, userEmail string, maxResults int64) ([]*model.Email, error) {
		return []*model.Email{
			model.NewEmail("msg_1", "friend@mail.example", "Hello there", "Just saying hi", "", time.Now()),
			model.NewEmail("msg_2", "promo@shop.example", "Weekly newsletter", "Big discount inside", "", time.Now()),
		}, nil
	}

	aiCalled := false
	mockAIClient.CompleteFunc = func(ctx context.Context, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error) {
		aiCalled = true
		return "[]", nil
	}

	taskService := service.NewTaskService(taskRepo, appLogger)
	agentService := service.NewAgentService(taskService, mockGmailClient, mockCalendarClient, extractor.New(mockAIClient, appLogger), appLogger)

	// Execute
	summary, err := agentService.Run(context.Background(), "test@example.com")

	// Verify: short-circuits before the model is ever consulted
	assert.NoError(t, err)
	assert.Equal(t, model.RunStatusNoMatchingEmails, summary.Status)
	assert.Equal(t, 2, summary.EmailsScanned)
	assert.Equal(t, 0, summary.EmailsMatched)
	assert.False(t, aiCalled)
}

func TestAgentServiceRunNoTasksFound(t *testing.T) {
	// Setup
	taskRepo := memory.NewInMemoryTaskRepository()
	mockGmailClient := gmail.NewMockGmailClient()
	mockCalendarClient := calendar.NewMockCalendarClient()
	mockAIClient := ai.NewMockAIClient()
	appLogger := logger.New()

	mockGmailClient.FetchRecentEmailsFunc = func(ctx context.Context, userEmail string, maxResults int64) ([]*model.Email, error) {
		return []*model.Email{
			model.NewEmail("msg_1", "prof@university.example", "Submit assignment", "Due Friday", "", time.Now()),
		}, nil
	}

	// Default mock AI behavior returns an empty array

	taskService := service.NewTaskService(taskRepo, appLogger)
	agentService := service.NewAgentService(taskService, mockGmailClient, mockCalendarClient, extractor.New(mockAIClient, appLogger), appLogger)

	// Execute
	summary, err := agentService.Run(context.Background(), "test@example.com")

	// Verify
	assert.NoError(t, err)
	assert.Equal(t, model.RunStatusNoTasksFound, summary.Status)
	assert.Equal(t, 1, summary.EmailsMatched)
	assert.Equal(t, 0, summary.TasksExtracted)
	assert.Equal(t, 0, summary.TasksCreated)
}

func TestAgentServiceRunCalendarFailureDegrades(t *testing.T) {
	// Setup
	taskRepo := memory.NewInMemoryTaskRepository()
	mockGmailClient := gmail.NewMockGmailClient()
	mockCalendarClient := calendar.NewMockCalendarClient()
	mockAIClient := ai.NewMockAIClient()
	appLogger := logger.New()

	mockGmailClient.FetchRecentEmailsFunc = func(ctx context.Context, userEmail string, maxResults int64) ([]*model.Email, error) {
		return []*model.Email{
			model.NewEmail("msg_1", "prof@university.example", "Submit assignment", "Due Friday", "", time.Now()),
		}, nil
	}

	mockCalendarClient.FetchUpcomingEventsFunc = func(ctx context.Context, userEmail string, timeMin, timeMax time.Time, maxResults int64) ([]*model.Event, error) {
		return nil, errors.New("calendar unavailable")
	}

	mockAIClient.CompleteFunc = func(ctx context.Context, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error) {
		assert.NotContains(t, userPrompt, "UPCOMING CALENDAR EVENTS")
		return `[{"title": "Submit assignment"}]`, nil
	}

	taskService := service.NewTaskService(taskRepo, appLogger)
	agentService := service.NewAgentService(taskService, mockGmailClient, mockCalendarClient, extractor.New(mockAIClient, appLogger), appLogger)

	// Execute
	summary, err := agentService.Run(context.Background(), "test@example.com")

	// Verify: the run completes without calendar context
	assert.NoError(t, err)
	assert.Equal(t, model.RunStatusTasksCreated, summary.Status)
	assert.True(t, summary.CalendarDegraded)
	assert.Equal(t, 1, summary.TasksCreated)
}

func TestAgentServiceRunGmailFailure(t *testing.T) {
	// Setup
	taskRepo := memory.NewInMemoryTaskRepository()
	mockGmailClient := gmail.NewMockGmailClient()
	mockCalendarClient := calendar.NewMockCalendarClient()
	mockAIClient := ai.NewMockAIClient()
	appLogger := logger.New()

	mockGmailClient.FetchRecentEmailsFunc = func(ctx context.Context, userEmail string, maxResults int64) ([]*model.Email, error) {
		return nil, errors.New("token expired")
	}

	taskService := service.NewTaskService(taskRepo, appLogger)
	agentService := service.NewAgentService(taskService, mockGmailClient, mockCalendarClient, extractor.New(mockAIClient, appLogger), appLogger)

	// Execute
	summary, err := agentService.Run(context.Background(), "test@example.com")

	// Verify
	assert.Error(t, err)
	assert.Nil(t, summary)
	assert.Contains(t, err.Error(), "token expired")
}

func TestAgentServiceRunRepeatCreatesNoDuplicates(t *testing.T) {
	// Setup
	taskRepo := memory.NewInMemoryTaskRepository()
	mockGmailClient := gmail.NewMockGmailClient()
	mockCalendarClient := calendar.NewMockCalendarClient()
	mockAIClient := ai.NewMockAIClient()
	appLogger := logger.New()

	mockGmailClient.FetchRecentEmailsFunc = func(ctx context.Context, userEmail string, maxResults int64) ([]*model.Email, error) {
		return []*model.Email{
			model.NewEmail("msg_1", "prof@university.example", "Submit assignment", "Due Friday", "", time.Now()),
		}, nil
	}

	var lastPrompt string
	mockAIClient.CompleteFunc = func(ctx context.Context, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error) {
		lastPrompt = userPrompt
		return `[{"title": "Submit assignment"}]`, nil
	}

	taskService := service.NewTaskService(taskRepo, appLogger)
	agentService := service.NewAgentService(taskService, mockGmailClient, mockCalendarClient, extractor.New(mockAIClient, appLogger), appLogger)

	// Execute: same mailbox processed twice
	first, err := agentService.Run(context.Background(), "test@example.com")
	assert.NoError(t, err)
	second, err := agentService.Run(context.Background(), "test@example.com")
	assert.NoError(t, err)

	// Verify: the second run sees the existing title and dedup holds
	assert.Equal(t, 1, first.TasksCreated)
	assert.Equal(t, 0, second.TasksCreated)
	assert.Contains(t, lastPrompt, "EXISTING TASKS")
	assert.Contains(t, lastPrompt, "- Submit assignment")

	tasks, _ := taskService.GetAllTasks(context.Background(), "test@example.com")
	assert.Len(t, tasks, 1)
}
