package repository

import (
	"context"

	"smart-life-agent/internal/model"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindAll(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error
}

// TaskRepository defines the interface for a per-user task collection, keyed
// by the user's email address. FindByUser returns tasks ordered by date.
// UpdatePriorityByTitle updates every task whose title exactly equals the
// given one and reports how many it touched; MarkCompleted and Delete report
// whether the target existed.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	FindByUser(ctx context.Context, userEmail string) ([]*model.Task, error)
	UpdatePriorityByTitle(ctx context.Context, userEmail, title, priority string) (int, error)
	MarkCompleted(ctx context.Context, userEmail, taskID string) (bool, error)
	Delete(ctx context.Context, userEmail, taskID string) (bool, error)
	DeleteAll(ctx context.Context, userEmail string) (int, error)
}
