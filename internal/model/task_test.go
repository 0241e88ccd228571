package model_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"smart-life-agent/internal/model"
)

func TestNewTaskFromDraftFillsDefaults(t *testing.T) {
	// Setup: a draft with every field blank or unrecognized
	draft := model.TaskDraft{Priority: "whenever", Category: "Chores"}

	// Execute
	task := model.NewTaskFromDraft("test@example.com", draft)

	// Verify
	assert.True(t, strings.HasPrefix(task.ID, "task-"))
	assert.Len(t, task.ID, len("task-")+8)
	assert.Equal(t, "test@example.com", task.UserEmail)
	assert.Equal(t, "Untitled Task", task.Title)
	assert.Equal(t, time.Now().Format("2006-01-02"), task.Date)
	assert.Equal(t, model.PriorityMedium, task.Priority)
	assert.Equal(t, model.CategoryGeneral, task.Category)
	assert.Equal(t, model.StatusPending, task.Status)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestNewTaskFromDraftKeepsValidFields(t *testing.T) {
	// Setup
	draft := model.TaskDraft{
		Title:       "  Submit assignment  ",
		Description: "Upload the final report",
		Date:        "2025-06-06",
		Priority:    "HIGH",
		Category:    "deadline",
	}

	// Execute
	task := model.NewTaskFromDraft("test@example.com", draft)

	// Verify
	assert.Equal(t, "Submit assignment", task.Title)
	assert.Equal(t, "Upload the final report", task.Description)
	assert.Equal(t, "2025-06-06", task.Date)
	assert.Equal(t, model.PriorityHigh, task.Priority)
	assert.Equal(t, model.CategoryDeadline, task.Category)
}

func TestNewTaskFromDraftRejectsBadDate(t *testing.T) {
	// Setup
	draft := model.TaskDraft{Title: "Pay rent", Date: "next Tuesday"}

	// Execute
	task := model.NewTaskFromDraft("test@example.com", draft)

	// Verify
	assert.Equal(t, time.Now().Format("2006-01-02"), task.Date)
}

func TestNewTaskFromDraftAssignsUniqueIDs(t *testing.T) {
	// Execute
	first := model.NewTaskFromDraft("test@example.com", model.TaskDraft{Title: "Pay rent"})
	second := model.NewTaskFromDraft("test@example.com", model.TaskDraft{Title: "Pay rent"})

	// Verify
	assert.NotEqual(t, first.ID, second.ID)
}

func TestNormalizePriority(t *testing.T) {
	assert.Equal(t, model.PriorityHigh, model.NormalizePriority("high"))
	assert.Equal(t, model.PriorityHigh, model.NormalizePriority(" High "))
	assert.Equal(t, model.PriorityLow, model.NormalizePriority("LOW"))
	assert.Equal(t, model.PriorityMedium, model.NormalizePriority("medium"))
	assert.Equal(t, model.PriorityMedium, model.NormalizePriority("critical"))
	assert.Equal(t, model.PriorityMedium, model.NormalizePriority(""))
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, model.CategoryMeeting, model.NormalizeCategory("meeting"))
	assert.Equal(t, model.CategoryDeadline, model.NormalizeCategory("DEADLINE"))
	assert.Equal(t, model.CategoryFollowUp, model.NormalizeCategory("follow-up"))
	assert.Equal(t, model.CategoryActionItem, model.NormalizeCategory("action item"))
	assert.Equal(t, model.CategoryGeneral, model.NormalizeCategory("general"))
	assert.Equal(t, model.CategoryGeneral, model.NormalizeCategory("Chores"))
	assert.Equal(t, model.CategoryGeneral, model.NormalizeCategory(""))
}

func TestNormalizedTitle(t *testing.T) {
	assert.Equal(t, "pay rent", model.NormalizedTitle("  Pay Rent  "))
	assert.Equal(t, "pay rent", model.NormalizedTitle("PAY RENT"))
	assert.Equal(t, "", model.NormalizedTitle("   "))
}
