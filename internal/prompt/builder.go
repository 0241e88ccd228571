// Package prompt assembles the bounded context block handed to the language
// model. Building is a pure transformation: caps are applied by truncating in
// input order, so callers that need prioritization must pre-sort.
package prompt

import (
	"fmt"
	"strings"
	"time"

	"smart-life-agent/internal/model"
)

// Caps on each section of the prompt. The extractor's output cap (5 tasks)
// lives with the extractor; these bound only what the model is shown.
const (
	MaxEmails          = 10
	MaxSignalsPerEmail = 5
	MaxExistingTitles  = 20
	MaxCalendarEvents  = 10
)

// Context is the structured payload for one extraction request.
type Context struct {
	Emails         []*model.Email
	ExistingTitles []string
	CalendarEvents []*model.Event
	ReferenceDate  time.Time
}

// Build truncates each input to its cap and fixes the reference date, which
// defaults to the current date when zero.
func Build(matched []*model.Email, existingTitles []string, events []*model.Event, referenceDate time.Time) *Context {
	if len(matched) > MaxEmails {
		matched = matched[:MaxEmails]
	}
	if len(existingTitles) > MaxExistingTitles {
		existingTitles = existingTitles[:MaxExistingTitles]
	}
	if len(events) > MaxCalendarEvents {
		events = events[:MaxCalendarEvents]
	}
	if referenceDate.IsZero() {
		referenceDate = time.Now()
	}
	return &Context{
		Emails:         matched,
		ExistingTitles: existingTitles,
		CalendarEvents: events,
		ReferenceDate:  referenceDate,
	}
}

// Render produces the user-content block for the model request.
func (c *Context) Render() string {
	var b strings.Builder

	b.WriteString("You are analyzing emails that were pre-filtered by keywords.\n")
	b.WriteString("Each email has already been identified as containing actionable keywords.\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("1. Create at MOST 5 tasks total.\n")
	b.WriteString("2. Create tasks ONLY for genuinely actionable items matching the keywords shown.\n")
	b.WriteString("3. Do NOT duplicate any existing tasks listed below.\n")
	b.WriteString("4. Consider calendar events to avoid scheduling conflicts.\n")
	fmt.Fprintf(&b, "5. Today's date is %s.\n\n", c.ReferenceDate.Format("2006-01-02"))

	b.WriteString("Emails:\n")
	for _, email := range c.Emails {
		signals := email.MatchedKeywords
		if len(signals) > MaxSignalsPerEmail {
			signals = signals[:MaxSignalsPerEmail]
		}
		fmt.Fprintf(&b, "- From: %s\n", email.Sender)
		fmt.Fprintf(&b, "  Subject: %s\n", email.Subject)
		fmt.Fprintf(&b, "  Snippet: %s\n", email.Snippet)
		fmt.Fprintf(&b, "  Matched Keywords: [%s]\n", strings.Join(signals, ", "))
	}

	if len(c.ExistingTitles) > 0 {
		b.WriteString("\nEXISTING TASKS (do NOT create duplicates of these):\n")
		for _, title := range c.ExistingTitles {
			fmt.Fprintf(&b, "- %s\n", title)
		}
	}

	if len(c.CalendarEvents) > 0 {
		b.WriteString("\nUPCOMING CALENDAR EVENTS (avoid scheduling conflicts):\n")
		for _, event := range c.CalendarEvents {
			fmt.Fprintf(&b, "- %s on %s\n", event.Title, event.Start)
		}
	}

	b.WriteString("\nFor each task, return a JSON array with:\n")
	b.WriteString("- \"title\": short clear task title (max 8 words)\n")
	b.WriteString("- \"description\": brief action description (1 sentence)\n")
	b.WriteString("- \"date\": due date in YYYY-MM-DD format (use today if unclear)\n")
	b.WriteString("- \"priority\": \"high\", \"medium\", or \"low\"\n")
	b.WriteString("- \"category\": one of \"Meeting\", \"Deadline\", \"Follow-up\", \"Action Item\", \"General\"\n\n")
	b.WriteString("Return ONLY a valid JSON array. If no actionable tasks, return [].\n")
	b.WriteString("No markdown formatting, just raw JSON.")

	return b.String()
}
