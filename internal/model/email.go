package model

import "time"

// Email is a raw message fetched from the mail provider. It is read-only
// input to the pipeline; the only field the pipeline touches is
// MatchedKeywords, which the keyword classifier fills in for survivors.
type Email struct {
	ID              string    `json:"id"` // provider message id
	Sender          string    `json:"sender"`
	Subject         string    `json:"subject"`
	Snippet         string    `json:"snippet"`
	Body            string    `json:"body"`
	Date            time.Time `json:"date"`
	MatchedKeywords []string  `json:"matched_keywords,omitempty"`
}

func NewEmail(id, sender, subject, snippet, body string, date time.Time) *Email {
	return &Email{
		ID:      id,
		Sender:  sender,
		Subject: subject,
		Snippet: snippet,
		Body:    body,
		Date:    date,
	}
}
