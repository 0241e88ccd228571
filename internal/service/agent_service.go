package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"smart-life-agent/internal/config"
	"smart-life-agent/internal/keyword"
	"smart-life-agent/internal/logger"
	"smart-life-agent/internal/model"
	"smart-life-agent/internal/prompt"
)

type agentService struct {
	taskService    TaskService
	gmailClient    GmailClient
	calendarClient CalendarClient
	extractor      TaskExtractor
	logger         *logger.Logger
}

func NewAgentService(
	taskService TaskService,
	gmailClient GmailClient,
	calendarClient CalendarClient,
	extractor TaskExtractor,
	logger *logger.Logger,
) AgentService {
	return &agentService{
		taskService:    taskService,
		gmailClient:    gmailClient,
		calendarClient: calendarClient,
		extractor:      extractor,
		logger:         logger,
	}
}

// Run executes one pipeline pass for the user: fetch recent mail, keyword
// filter, gather dedup/calendar context, extract drafts, persist. Every
// empty stage short-circuits with its own status. Calendar failure degrades
// to "no events"; only mail fetch and store errors surface as run errors.
func (s *agentService) Run(ctx context.Context, userEmail string) (*model.RunSummary, error) {
	maxFetchStr := config.GetEnv("MAX_FETCH_EMAILS", "20")
	maxFetch, err := strconv.ParseInt(maxFetchStr, 10, 64)
	if err != nil || maxFetch <= 0 {
		maxFetch = 20
	}

	emails, err := s.gmailClient.FetchRecentEmails(ctx, userEmail, maxFetch)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch emails: %w", err)
	}

	summary := &model.RunSummary{EmailsScanned: len(emails)}

	matched := keyword.Filter(emails)
	summary.EmailsMatched = len(matched)
	if len(matched) == 0 {
		s.logger.Info("Agent run for", userEmail, "- no emails matched the keyword gate")
		summary.Status = model.RunStatusNoMatchingEmails
		return summary, nil
	}

	existingTitles, err := s.taskService.GetExistingTitles(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing task titles: %w", err)
	}

	now := time.Now()
	events, err := s.calendarClient.FetchUpcomingEvents(ctx, userEmail, now, now.AddDate(0, 1, 0), prompt.MaxCalendarEvents)
	if err != nil {
		// Calendar is context only; a failed fetch never aborts the run.
		s.logger.Warn("Calendar fetch failed, continuing without events:", err)
		summary.CalendarDegraded = true
		events = nil
	}

	promptContext := prompt.Build(matched, existingTitles, events, now)

	drafts := s.extractor.Extract(ctx, promptContext)
	summary.TasksExtracted = len(drafts)
	if len(drafts) == 0 {
		s.logger.Info("Agent run for", userEmail, "- extractor returned no tasks")
		summary.Status = model.RunStatusNoTasksFound
		return summary, nil
	}

	created, err := s.taskService.CreateBulk(ctx, userEmail, drafts)
	if err != nil {
		return nil, fmt.Errorf("failed to persist extracted tasks: %w", err)
	}

	summary.TasksCreated = len(created)
	summary.Tasks = created
	summary.Status = model.RunStatusTasksCreated

	s.logger.Info("Agent run for", userEmail,
		"- scanned:", summary.EmailsScanned,
		"matched:", summary.EmailsMatched,
		"extracted:", summary.TasksExtracted,
		"created:", summary.TasksCreated)
	return summary, nil
}
