package domain

import "time"

type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)

// CollectionRun is one attempt to perform a full collection. Rows are never
// deleted; a failed run keeps its checkpoints and retries for postmortem.
type CollectionRun struct {
	ID               int64      `db:"id" json:"id"`
	StartedAt        time.Time  `db:"started_at" json:"started_at"`
	FinishedAt       *time.Time `db:"finished_at" json:"finished_at,omitempty"`
	Status           RunStatus  `db:"status" json:"status"`
	ErrorMessage     *string    `db:"error_message" json:"error_message,omitempty"`
	RecordsCollected *int64     `db:"records_collected" json:"records_collected,omitempty"`
}

// RunSummary holds statistics about a collection run.
type RunSummary struct {
	RunID       int64
	Resumed     bool
	Licenses    int64
	Users       int64
	Assignments int64
	Retries     int
	Duration    time.Duration
}

// Records is the number of records the run persisted across all phases.
func (s *RunSummary) Records() int64 {
	return s.Licenses + s.Users + s.Assignments
}
