// Package retry decides when a directory API response is throttled and how
// long to wait before asking again.
package retry

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultMaxRetries = 5
	DefaultBase       = 2.0
	DefaultUnit       = time.Second
	DefaultMaxDelay   = 2 * time.Minute
)

// Policy computes wait intervals for throttled requests.
type Policy struct {
	// MaxRetries bounds how many times one request is retried.
	MaxRetries int
	Base       float64
	Unit       time.Duration
	// MaxDelay caps the computed backoff. A Retry-After hint is not capped.
	// Zero means DefaultMaxDelay; a negative value disables the cap.
	MaxDelay time.Duration

	now func() time.Time
}

// DefaultPolicy returns the policy used when nothing is configured.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries: DefaultMaxRetries,
		Base:       DefaultBase,
		Unit:       DefaultUnit,
		MaxDelay:   DefaultMaxDelay,
	}
}

// IsThrottled reports whether the upstream signalled rate limiting.
func IsThrottled(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests
}

// Delay returns how long to wait before retry number attempt (zero-indexed).
// A parsable Retry-After header wins; otherwise the delay is Unit*Base^attempt.
func (p Policy) Delay(header http.Header, attempt int) time.Duration {
	if hint, ok := p.waitHint(header); ok {
		return hint
	}
	return p.Backoff(attempt)
}

// Backoff returns the exponential delay for attempt without jitter.
func (p Policy) Backoff(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}

	base := p.Base
	if base <= 0 {
		base = DefaultBase
	}
	unit := p.Unit
	if unit <= 0 {
		unit = DefaultUnit
	}

	maxDelay := p.MaxDelay
	if maxDelay == 0 {
		maxDelay = DefaultMaxDelay
	}

	delay := float64(unit) * math.Pow(base, float64(attempt))
	if maxDelay > 0 && delay > float64(maxDelay) {
		return maxDelay
	}
	if delay >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(delay)
}

// waitHint parses Retry-After as delta-seconds or an HTTP-date. Malformed,
// negative or out-of-range values are ignored so the caller falls back to
// backoff.
func (p Policy) waitHint(header http.Header) (time.Duration, bool) {
	if header == nil {
		return 0, false
	}
	raw := strings.TrimSpace(header.Get("Retry-After"))
	if raw == "" {
		return 0, false
	}

	if secs, err := strconv.ParseFloat(raw, 64); err == nil {
		wait := secs * float64(time.Second)
		if secs < 0 || math.IsNaN(secs) || wait >= math.MaxInt64 {
			return 0, false
		}
		return time.Duration(wait), true
	}

	at, err := http.ParseTime(raw)
	if err != nil {
		return 0, false
	}
	now := time.Now
	if p.now != nil {
		now = p.now
	}
	wait := at.Sub(now())
	if wait < 0 {
		wait = 0
	}
	return wait, true
}
