package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrThrottleExhausted is returned when an endpoint keeps throttling past
	// the retry budget.
	ErrThrottleExhausted = errors.New("throttle retries exhausted")
	// ErrStoreWrite wraps local persistence failures that abort a run.
	ErrStoreWrite = errors.New("store write failed")
	// ErrRunNotFound is returned by lookups of unknown run IDs.
	ErrRunNotFound = errors.New("collection run not found")
	// ErrRunFinished is returned when resuming a run that already completed
	// or failed.
	ErrRunFinished = errors.New("collection run already finished")
	// ErrResumeCursorMissing means an unfinished paginated phase has no
	// continuation link to resume from.
	ErrResumeCursorMissing = errors.New("checkpoint has no continuation link")
)

// UpstreamError is a non-2xx response from the directory API.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Header     http.Header
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}
