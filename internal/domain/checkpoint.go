package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Phase labels one data stream within a run. Each phase has its own
// checkpoint stream.
type Phase string

const (
	PhaseLicenses     Phase = "licenses"
	PhaseUserActivity Phase = "user_activity"
	PhaseUserLicenses Phase = "user_licenses"
)

// Phases lists the collection phases in execution order.
var Phases = []Phase{PhaseLicenses, PhaseUserActivity, PhaseUserLicenses}

// Next returns the phase that follows p, or "" when p is the last one.
func (p Phase) Next() Phase {
	for i, phase := range Phases {
		if phase == p && i+1 < len(Phases) {
			return Phases[i+1]
		}
	}
	return ""
}

// CheckpointDetail is the resume hint stored next to a checkpoint.
// NextLink is the continuation cursor of a paginated phase and is read back
// on resume. LastKey is the natural key of the last written item.
type CheckpointDetail struct {
	NextLink string `json:"next_link,omitempty"`
	LastKey  string `json:"last_key,omitempty"`
}

func (d CheckpointDetail) Value() (driver.Value, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (d *CheckpointDetail) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*d = CheckpointDetail{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("unsupported checkpoint detail type %T", src)
	}
	if len(raw) == 0 {
		*d = CheckpointDetail{}
		return nil
	}
	return json.Unmarshal(raw, d)
}

// Checkpoint is a durable marker of progress within a run. A nil Total means
// the total is not known yet.
type Checkpoint struct {
	ID        int64            `db:"id" json:"id"`
	RunID     int64            `db:"collection_run_id" json:"run_id"`
	Phase     Phase            `db:"phase" json:"phase"`
	Progress  int64            `db:"progress" json:"progress"`
	Total     *int64           `db:"total" json:"total"`
	Detail    CheckpointDetail `db:"details" json:"details"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
}

// Complete reports whether the checkpoint closes its phase.
func (c *Checkpoint) Complete() bool {
	return c.Total != nil && c.Progress >= *c.Total
}

// ProgressEntry is a status snapshot meant for external polling.
type ProgressEntry struct {
	ID        int64     `db:"id" json:"id"`
	RunID     int64     `db:"collection_run_id" json:"run_id"`
	Phase     Phase     `db:"phase" json:"phase"`
	Progress  int64     `db:"progress" json:"progress"`
	Total     *int64    `db:"total" json:"total"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// RetryRecord logs one retry attempt against an endpoint. Attempt is 1-indexed.
type RetryRecord struct {
	ID          int64     `db:"id" json:"id"`
	RunID       int64     `db:"collection_run_id" json:"run_id"`
	Endpoint    string    `db:"endpoint" json:"endpoint"`
	Attempt     int       `db:"attempt" json:"attempt"`
	DelayMillis int64     `db:"delay_ms" json:"delay_ms"`
	Reason      string    `db:"reason" json:"reason"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

func (r *RetryRecord) Delay() time.Duration {
	return time.Duration(r.DelayMillis) * time.Millisecond
}

// CollectionStatus is the answer to a status query for one run.
type CollectionStatus struct {
	RunID        int64     `json:"run_id"`
	RunStatus    RunStatus `json:"run_status"`
	CurrentPhase Phase     `json:"current_phase,omitempty"`
	Progress     int64     `json:"progress"`
	Total        *int64    `json:"total"`
	Percentage   *float64  `json:"percentage"`
	Message      string    `json:"message,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Percentage computes progress as a percentage rounded to one decimal.
// It returns nil while the total is unknown.
func Percentage(progress int64, total *int64) *float64 {
	if total == nil {
		return nil
	}
	pct := 100.0
	if *total > 0 {
		pct = math.Round(float64(progress)/float64(*total)*1000) / 10
	}
	return &pct
}
