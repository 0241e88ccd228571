package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Task categories.
const (
	CategoryMeeting    = "Meeting"
	CategoryDeadline   = "Deadline"
	CategoryFollowUp   = "Follow-up"
	CategoryActionItem = "Action Item"
	CategoryGeneral    = "General"
)

// Task statuses.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// TaskDraft is an unpersisted, model-proposed candidate task. It exists only
// between extraction and the dedup/persist step. Field values come straight
// from the model response; the task service applies defaults and normalizes
// unknown priority/category values when it persists a draft.
type TaskDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
}

// Task is a persisted task owned by one user's collection.
type Task struct {
	ID          string    `json:"id"`
	UserEmail   string    `json:"-"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Priority    string    `json:"priority"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewTaskFromDraft builds a persistable task from a draft, assigning a fresh
// id and filling every missing or unrecognized field with its documented
// default (date -> today, priority -> medium, category -> General).
func NewTaskFromDraft(userEmail string, draft TaskDraft) *Task {
	now := time.Now()

	title := strings.TrimSpace(draft.Title)
	if title == "" {
		title = "Untitled Task"
	}

	date := strings.TrimSpace(draft.Date)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		date = now.Format("2006-01-02")
	}

	return &Task{
		ID:          fmt.Sprintf("task-%s", uuid.New().String()[:8]),
		UserEmail:   userEmail,
		Title:       title,
		Description: strings.TrimSpace(draft.Description),
		Date:        date,
		Priority:    NormalizePriority(draft.Priority),
		Category:    NormalizeCategory(draft.Category),
		Status:      StatusPending,
		CreatedAt:   now,
	}
}

// NormalizePriority maps a model-supplied priority onto the enum, falling
// back to medium for anything it does not recognize.
func NormalizePriority(priority string) string {
	switch strings.ToLower(strings.TrimSpace(priority)) {
	case PriorityHigh:
		return PriorityHigh
	case PriorityLow:
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// NormalizeCategory maps a model-supplied category onto the enum, falling
// back to General for anything it does not recognize.
func NormalizeCategory(category string) string {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case strings.ToLower(CategoryMeeting):
		return CategoryMeeting
	case strings.ToLower(CategoryDeadline):
		return CategoryDeadline
	case strings.ToLower(CategoryFollowUp):
		return CategoryFollowUp
	case strings.ToLower(CategoryActionItem):
		return CategoryActionItem
	default:
		return CategoryGeneral
	}
}

// NormalizedTitle is the dedup key for a task title: trimmed and lowercased.
func NormalizedTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
