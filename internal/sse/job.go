package sse

import (
	"context"
	"strconv"
	"time"

	"smart-life-agent/internal/config"
	"smart-life-agent/internal/logger"
	"smart-life-agent/internal/model"
	"smart-life-agent/internal/repository"
	"smart-life-agent/internal/service"
)

// AgentRunJob periodically runs the extraction pipeline for every user with
// an active SSE connection and pushes the created tasks to them.
type AgentRunJob struct {
	agentService service.AgentService
	userRepo     repository.UserRepository
	sseManager   *SSEManager
	logger       *logger.Logger
	interval     time.Duration

	ctx    context.Context
	cancel context.CancelFunc
}

// NewAgentRunJob creates a new periodic agent run job
func NewAgentRunJob(
	agentService service.AgentService,
	userRepo repository.UserRepository,
	sseManager *SSEManager,
	logger *logger.Logger,
) *AgentRunJob {
	intervalStr := config.GetEnv("AGENT_SYNC_INTERVAL_SECONDS", "300")
	intervalSeconds, err := strconv.Atoi(intervalStr)
	if err != nil || intervalSeconds <= 0 {
		intervalSeconds = 300
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &AgentRunJob{
		agentService: agentService,
		userRepo:     userRepo,
		sseManager:   sseManager,
		logger:       logger,
		interval:     time.Duration(intervalSeconds) * time.Second,
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Start begins the periodic agent runs. It blocks until Stop is called, so
// callers launch it in a goroutine.
func (j *AgentRunJob) Start() {
	j.logger.Info("Starting agent run job with interval:", j.interval.String())

	go j.RunOnce()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			go j.RunOnce()
		case <-j.ctx.Done():
			j.logger.Info("Agent run job stopped")
			return
		}
	}
}

// Stop stops the periodic agent run job
func (j *AgentRunJob) Stop() {
	j.cancel()
}

// RunOnce executes the pipeline for every connected user - exported for testing
func (j *AgentRunJob) RunOnce() {
	j.logger.Info("Running periodic agent pass...")

	users, err := j.userRepo.FindAll(j.ctx)
	if err != nil {
		j.logger.Error("Failed to get users for agent pass:", err)
		return
	}

	for _, user := range users {
		// Only run for users actually watching; the pipeline is not free.
		if !j.sseManager.HasUserConnection(user.Email) {
			continue
		}

		summary, err := j.agentService.Run(j.ctx, user.Email)
		if err != nil {
			j.logger.Error("Agent run failed for user", user.Email, ":", err)
			continue
		}

		if summary.Status != model.RunStatusTasksCreated {
			continue
		}

		for _, task := range summary.Tasks {
			j.sseManager.BroadcastTaskToUser(user.Email, task)
		}
		j.sseManager.BroadcastRunSummaryToUser(user.Email, summary)
	}

	j.logger.Info("Completed periodic agent pass")
}
