package prompt_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"smart-life-agent/internal/model"
	"smart-life-agent/internal/prompt"
)

func TestBuildTruncatesEmails(t *testing.T) {
	// Setup: more emails than the prompt will carry
	var emails []*model.Email
	for i := 0; i < 15; i++ {
		emails = append(emails, model.NewEmail(fmt.Sprintf("msg_%d", i), "sender@example.com", fmt.Sprintf("Subject %d", i), "", "", time.Now()))
	}

	// Execute
	ctx := prompt.Build(emails, nil, nil, time.Now())

	// Verify
	assert.Len(t, ctx.Emails, prompt.MaxEmails)
	assert.Equal(t, "msg_0", ctx.Emails[0].ID)
	assert.Equal(t, "msg_9", ctx.Emails[len(ctx.Emails)-1].ID)
}

func TestBuildTruncatesTitlesAndEvents(t *testing.T) {
	// Setup
	var titles []string
	for i := 0; i < 25; i++ {
		titles = append(titles, fmt.Sprintf("Task %d", i))
	}
	var events []*model.Event
	for i := 0; i < 12; i++ {
		events = append(events, &model.Event{ID: fmt.Sprintf("evt_%d", i), Title: fmt.Sprintf("Event %d", i)})
	}

	// Execute
	ctx := prompt.Build(nil, titles, events, time.Now())

	// Verify
	assert.Len(t, ctx.ExistingTitles, prompt.MaxExistingTitles)
	assert.Len(t, ctx.CalendarEvents, prompt.MaxCalendarEvents)
}

func TestBuildDefaultsReferenceDate(t *testing.T) {
	// Execute
	ctx := prompt.Build(nil, nil, nil, time.Time{})

	// Verify
	assert.False(t, ctx.ReferenceDate.IsZero())
}

func TestRenderIncludesEmailDetails(t *testing.T) {
	// Setup
	email := model.NewEmail("msg_1", "prof@university.example", "Submit assignment", "Due Friday", "", time.Now())
	email.MatchedKeywords = []string{"submit", "due"}
	refDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	// Execute
	rendered := prompt.Build([]*model.Email{email}, nil, nil, refDate).Render()

	// Verify
	assert.Contains(t, rendered, "Today's date is 2025-06-01.")
	assert.Contains(t, rendered, "From: prof@university.example")
	assert.Contains(t, rendered, "Subject: Submit assignment")
	assert.Contains(t, rendered, "Snippet: Due Friday")
	assert.Contains(t, rendered, "Matched Keywords: [submit, due]")
	assert.Contains(t, rendered, "Return ONLY a valid JSON array.")
}

func TestRenderCapsSignalsPerEmail(t *testing.T) {
	// Setup: more matched signals than the prompt shows per email
	email := model.NewEmail("msg_1", "prof@university.example", "Busy email", "", "", time.Now())
	email.MatchedKeywords = []string{"submit", "due", "urgent", "meeting", "invoice", "renew", "confirm"}

	// Execute
	rendered := prompt.Build([]*model.Email{email}, nil, nil, time.Now()).Render()

	// Verify
	assert.Contains(t, rendered, "Matched Keywords: [submit, due, urgent, meeting, invoice]")
	assert.NotContains(t, rendered, "renew")
}

func TestRenderOptionalSections(t *testing.T) {
	// Setup
	email := model.NewEmail("msg_1", "prof@university.example", "Submit assignment", "", "", time.Now())
	titles := []string{"Pay rent"}
	events := []*model.Event{{ID: "evt_1", Title: "Team sync", Start: "2025-06-03T10:00:00Z"}}

	// Execute
	withContext := prompt.Build([]*model.Email{email}, titles, events, time.Now()).Render()
	withoutContext := prompt.Build([]*model.Email{email}, nil, nil, time.Now()).Render()

	// Verify
	assert.Contains(t, withContext, "EXISTING TASKS (do NOT create duplicates of these):")
	assert.Contains(t, withContext, "- Pay rent")
	assert.Contains(t, withContext, "UPCOMING CALENDAR EVENTS (avoid scheduling conflicts):")
	assert.Contains(t, withContext, "- Team sync on 2025-06-03T10:00:00Z")
	assert.NotContains(t, withoutContext, "EXISTING TASKS")
	assert.NotContains(t, withoutContext, "UPCOMING CALENDAR EVENTS")
}

func TestRenderListsEachEmailOnce(t *testing.T) {
	// Setup
	emails := []*model.Email{
		model.NewEmail("msg_1", "a@example.com", "First subject", "", "", time.Now()),
		model.NewEmail("msg_2", "b@example.com", "Second subject", "", "", time.Now()),
	}

	// Execute
	rendered := prompt.Build(emails, nil, nil, time.Now()).Render()

	// Verify
	assert.Equal(t, 2, strings.Count(rendered, "- From:"))
	assert.Contains(t, rendered, "Subject: First subject")
	assert.Contains(t, rendered, "Subject: Second subject")
}
