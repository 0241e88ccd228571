// Package keyword implements the fixed keyword gate that decides which emails
// are worth sending to the language model. The taxonomy is deliberately a
// whitelist: an email matches as soon as one positive keyword (or a date/time
// pattern) appears, no matter what promotional noise it also contains. Ignore
// words only explain a non-match, they never veto a positive hit.
package keyword

import "regexp"

// Core action verbs: the strongest actionability signals.
var actionKeywords = []string{
	"submit", "submission", "complete", "finish", "attend", "join", "appear for",
	"pay", "payment due", "renew", "renewal", "return", "respond", "reply required",
	"confirm", "approve", "review", "prepare", "upload", "download and submit",
	"register", "schedule", "reschedule", "book", "cancel", "update", "verify",
	"validate", "sign", "sign and send", "provide", "share", "send", "apply",
	"fill out", "fill in", "complete form", "action required", "immediate action",
	"urgent action", "mandatory", "required", "must",
}

// Deadline and time-limit phrases.
var deadlineKeywords = []string{
	"deadline", "due", "due date", "last date", "by", "before", "on or before",
	"no later than", "expires", "expiry", "expiration", "closing date",
	"final date", "submission closes", "ends on", "valid till", "valid until",
	"time limit", "within", "prior to",
}

// Event and appointment nouns.
var eventKeywords = []string{
	"meeting", "call", "interview", "session", "appointment", "webinar",
	"workshop", "seminar", "conference", "demo", "presentation", "review meeting",
	"standup", "discussion", "briefing", "orientation", "induction",
	"exam", "test", "quiz", "assessment", "viva", "practical",
}

// Financial and payment terms.
var financialKeywords = []string{
	"invoice", "bill", "payment", "emi", "subscription", "renewal", "fee",
	"charges", "outstanding", "pending payment", "balance due", "installment",
	"tax filing", "penalty", "late fee",
}

// Document and form terms.
var documentKeywords = []string{
	"form submission", "documentation", "upload documents", "attach documents",
	"submit report", "submit project", "submit assignment", "submit application",
	"approval pending", "verification required", "kyc", "compliance",
}

// Urgency triggers.
var urgencyKeywords = []string{
	"urgent", "immediately", "asap", "important", "critical", "high priority",
	"time sensitive", "don't miss", "required immediately", "final reminder",
	"last reminder",
}

// Natural-language imperative phrases.
var phraseKeywords = []string{
	"you need to", "you have to", "please ensure", "please complete",
	"kindly submit", "kindly confirm", "kindly attend", "please respond",
	"please pay", "please return", "make sure to", "remember to",
}

// ignoreKeywords mark promotional or non-actionable mail. An email containing
// only these (and no positive keyword) is skipped.
var ignoreKeywords = []string{
	"newsletter", "discount", "offer", "sale", "promotion", "advertisement",
	"update available", "social media", "notification", "alert",
	"thanks", "congratulations",
}

// allKeywords is the full positive taxonomy, unioned in group order so the
// matched-signal list is deterministic.
var allKeywords = concat(
	actionKeywords,
	deadlineKeywords,
	eventKeywords,
	financialKeywords,
	documentKeywords,
	urgencyKeywords,
	phraseKeywords,
)

// datePattern detects DD-MM-YYYY, YYYY-MM-DD and HH:MM style fragments. A hit
// counts as one positive signal, labeled DateSignal.
var datePattern = regexp.MustCompile(`(?i)\d{1,2}[-/]\d{1,2}[-/]\d{2,4}|\d{4}[-/]\d{1,2}[-/]\d{1,2}|\d{1,2}:\d{2}\s?(?:am|pm)?`)

// DateSignal is the sentinel signal appended when the date pattern fires,
// kept distinct from lexical keyword hits.
const DateSignal = "DATE_PATTERN_DETECTED"

func concat(groups ...[]string) []string {
	var all []string
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}
