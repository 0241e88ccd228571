package model

// Event is an upcoming calendar event, consumed only as read-only context so
// the extractor can avoid proposing conflicting tasks. Start and End carry
// whatever the provider returned: an RFC 3339 timestamp for timed events or a
// bare date for all-day ones.
type Event struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
}
