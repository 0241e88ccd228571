package keyword

import (
	"strings"

	"smart-life-agent/internal/model"
)

// Result reports whether an email cleared the keyword gate and which signals
// fired, in taxonomy order.
type Result struct {
	Matched bool
	Signals []string
	// IgnoreOnly is set when the email carried ignore words and no positive
	// signal, to explain the non-match in diagnostics.
	IgnoreOnly bool
}

// Classify runs the keyword gate over subject + snippet + sender.
func Classify(email *model.Email) Result {
	text := strings.ToLower(strings.Join([]string{
		email.Subject,
		email.Snippet,
		email.Sender,
	}, " "))

	var signals []string
	for _, kw := range allKeywords {
		if strings.Contains(text, kw) {
			signals = append(signals, kw)
		}
	}
	if datePattern.MatchString(text) {
		signals = append(signals, DateSignal)
	}

	if len(signals) > 0 {
		return Result{Matched: true, Signals: signals}
	}

	for _, kw := range ignoreKeywords {
		if strings.Contains(text, kw) {
			return Result{IgnoreOnly: true}
		}
	}
	return Result{}
}

// Filter drops non-matching emails, preserving input order, and annotates
// survivors with their matched-signal list. Filtering an already-filtered
// batch returns it unchanged.
func Filter(emails []*model.Email) []*model.Email {
	var matched []*model.Email
	for _, email := range emails {
		result := Classify(email)
		if !result.Matched {
			continue
		}
		email.MatchedKeywords = result.Signals
		matched = append(matched, email)
	}
	return matched
}
