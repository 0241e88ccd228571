package service

import (
	"context"
	"fmt"
	"sync"

	"smart-life-agent/internal/logger"
	"smart-life-agent/internal/model"
	"smart-life-agent/internal/repository"
)

type taskService struct {
	taskRepo repository.TaskRepository
	logger   *logger.Logger

	// Per-user locks serialize the read-titles/create sequence so concurrent
	// runs for the same user cannot race past each other's in-flight title
	// sets and create duplicates.
	userLocks   map[string]*sync.Mutex
	userLocksMu sync.Mutex
}

func NewTaskService(taskRepo repository.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepo:  taskRepo,
		logger:    logger,
		userLocks: make(map[string]*sync.Mutex),
	}
}

func (s *taskService) userLock(userEmail string) *sync.Mutex {
	s.userLocksMu.Lock()
	defer s.userLocksMu.Unlock()

	lock, exists := s.userLocks[userEmail]
	if !exists {
		lock = &sync.Mutex{}
		s.userLocks[userEmail] = lock
	}
	return lock
}

// CreateBulk persists the given drafts for the user, skipping every draft
// whose trimmed-lowercased title is empty or already taken, either by an
// existing task or by an earlier draft in the same batch. Skips are the
// expected steady-state outcome of dedup, not errors; store write failures
// do propagate.
func (s *taskService) CreateBulk(ctx context.Context, userEmail string, drafts []model.TaskDraft) ([]*model.Task, error) {
	lock := s.userLock(userEmail)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.taskRepo.FindByUser(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing tasks: %w", err)
	}

	titleSet := make(map[string]bool, len(existing))
	for _, task := range existing {
		titleSet[model.NormalizedTitle(task.Title)] = true
	}

	var created []*model.Task
	for _, draft := range drafts {
		key := model.NormalizedTitle(draft.Title)
		if key == "" || titleSet[key] {
			continue
		}

		task := model.NewTaskFromDraft(userEmail, draft)
		if err := s.taskRepo.Create(ctx, task); err != nil {
			return nil, fmt.Errorf("failed to create task %q: %w", task.Title, err)
		}

		titleSet[key] = true
		created = append(created, task)
	}

	s.logger.Info("Created", len(created), "of", len(drafts), "drafted tasks for user:", userEmail)
	return created, nil
}

func (s *taskService) GetAllTasks(ctx context.Context, userEmail string) ([]*model.Task, error) {
	return s.taskRepo.FindByUser(ctx, userEmail)
}

func (s *taskService) GetExistingTitles(ctx context.Context, userEmail string) ([]string, error) {
	tasks, err := s.taskRepo.FindByUser(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(tasks))
	for _, task := range tasks {
		titles = append(titles, task.Title)
	}
	return titles, nil
}

// UpdatePriorityByTitle updates every task whose title exactly equals the
// given one. Multi-match is intentional: board clients address tasks by
// title, and repeated titles all move together.
func (s *taskService) UpdatePriorityByTitle(ctx context.Context, userEmail, title, priority string) (bool, error) {
	updated, err := s.taskRepo.UpdatePriorityByTitle(ctx, userEmail, title, model.NormalizePriority(priority))
	if err != nil {
		return false, fmt.Errorf("failed to update priority: %w", err)
	}
	return updated > 0, nil
}

func (s *taskService) CompleteTask(ctx context.Context, userEmail, taskID string) (bool, error) {
	return s.taskRepo.MarkCompleted(ctx, userEmail, taskID)
}

func (s *taskService) DeleteTask(ctx context.Context, userEmail, taskID string) (bool, error) {
	return s.taskRepo.Delete(ctx, userEmail, taskID)
}

func (s *taskService) DeleteAllTasks(ctx context.Context, userEmail string) (int, error) {
	return s.taskRepo.DeleteAll(ctx, userEmail)
}
