package model

// Run statuses reported by the agent pipeline. Each empty stage is a distinct
// terminal status, not an error.
const (
	RunStatusTasksCreated     = "tasks created"
	RunStatusNoMatchingEmails = "no matching emails"
	RunStatusNoTasksFound     = "no tasks found"
)

// RunSummary is the result of one end-to-end pipeline run for one user.
type RunSummary struct {
	Status           string  `json:"status"`
	EmailsScanned    int     `json:"emails_scanned"`
	EmailsMatched    int     `json:"emails_matched"`
	TasksExtracted   int     `json:"tasks_extracted"`
	TasksCreated     int     `json:"tasks_created"`
	CalendarDegraded bool    `json:"calendar_degraded"`
	Tasks            []*Task `json:"tasks"`
}
