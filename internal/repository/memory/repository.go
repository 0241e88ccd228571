package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"smart-life-agent/internal/model"
)

type InMemoryUserRepository struct {
	users map[string]*model.User
	mutex sync.RWMutex
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[string]*model.User),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *model.User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.users[user.ID] = user
	return nil
}

func (r *InMemoryUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	user, exists := r.users[id]
	if !exists {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (r *InMemoryUserRepository) FindByGoogleID(ctx context.Context, googleID string) (*model.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, user := range r.users {
		if user.GoogleID == googleID {
			return user, nil
		}
	}
	return nil, errors.New("user not found")
}

func (r *InMemoryUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.New("user not found")
}

func (r *InMemoryUserRepository) FindAll(ctx context.Context) ([]*model.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var users []*model.User
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

func (r *InMemoryUserRepository) Update(ctx context.Context, user *model.User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	_, exists := r.users[user.ID]
	if !exists {
		return errors.New("user not found")
	}
	r.users[user.ID] = user
	return nil
}

func (r *InMemoryUserRepository) Delete(ctx context.Context, id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.users, id)
	return nil
}

// Task repository implementation
type InMemoryTaskRepository struct {
	tasks map[string]*model.Task // task ID -> task
	mutex sync.RWMutex
}

func NewInMemoryTaskRepository() *InMemoryTaskRepository {
	return &InMemoryTaskRepository{
		tasks: make(map[string]*model.Task),
	}
}

func (r *InMemoryTaskRepository) Create(ctx context.Context, task *model.Task) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.tasks[task.ID] = task
	return nil
}

func (r *InMemoryTaskRepository) FindByUser(ctx context.Context, userEmail string) ([]*model.Task, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []*model.Task
	for _, task := range r.tasks {
		if task.UserEmail == userEmail {
			result = append(result, task)
		}
	}

	// Order by date, with creation time as tiebreaker for a stable listing
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (r *InMemoryTaskRepository) UpdatePriorityByTitle(ctx context.Context, userEmail, title, priority string) (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	updated := 0
	for _, task := range r.tasks {
		if task.UserEmail == userEmail && task.Title == title {
			task.Priority = priority
			updated++
		}
	}
	return updated, nil
}

func (r *InMemoryTaskRepository) MarkCompleted(ctx context.Context, userEmail, taskID string) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	task, exists := r.tasks[taskID]
	if !exists || task.UserEmail != userEmail {
		return false, nil
	}
	task.Status = model.StatusCompleted
	return true, nil
}

func (r *InMemoryTaskRepository) Delete(ctx context.Context, userEmail, taskID string) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	task, exists := r.tasks[taskID]
	if !exists || task.UserEmail != userEmail {
		return false, nil
	}
	delete(r.tasks, taskID)
	return true, nil
}

func (r *InMemoryTaskRepository) DeleteAll(ctx context.Context, userEmail string) (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	count := 0
	for id, task := range r.tasks {
		if task.UserEmail == userEmail {
			delete(r.tasks, id)
			count++
		}
	}
	return count, nil
}
