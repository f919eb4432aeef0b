package domain

import "time"

const (
	EventRunStarted   = "run.started"
	EventRunProgress  = "run.progress"
	EventRunCompleted = "run.completed"
	EventRunFailed    = "run.failed"
)

// RunEvent is published to the message bus on run lifecycle changes.
type RunEvent struct {
	Type      string    `json:"type"`
	RunID     int64     `json:"run_id"`
	Status    RunStatus `json:"status"`
	Phase     Phase     `json:"phase,omitempty"`
	Progress  int64     `json:"progress,omitempty"`
	Total     *int64    `json:"total,omitempty"`
	Records   int64     `json:"records,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
