package retry

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsThrottled(t *testing.T) {
	assert.True(t, IsThrottled(http.StatusTooManyRequests))
	assert.False(t, IsThrottled(http.StatusOK))
	assert.False(t, IsThrottled(http.StatusServiceUnavailable))
}

func TestDelay_ExponentialWithoutHint(t *testing.T) {
	p := DefaultPolicy()

	assert.Equal(t, 1*time.Second, p.Delay(http.Header{}, 0))
	assert.Equal(t, 2*time.Second, p.Delay(http.Header{}, 1))
	assert.Equal(t, 4*time.Second, p.Delay(http.Header{}, 2))
	assert.Equal(t, 8*time.Second, p.Delay(nil, 3))
}

func TestDelay_RetryAfterWins(t *testing.T) {
	p := DefaultPolicy()
	h := http.Header{}
	h.Set("Retry-After", "60")

	for attempt := 0; attempt < 5; attempt++ {
		assert.Equal(t, 60*time.Second, p.Delay(h, attempt))
	}
}

func TestDelay_RetryAfterIsNotCapped(t *testing.T) {
	p := DefaultPolicy()
	p.MaxDelay = 10 * time.Second
	h := http.Header{}
	h.Set("Retry-After", "300")

	assert.Equal(t, 300*time.Second, p.Delay(h, 0))
}

func TestDelay_MalformedHintFallsBack(t *testing.T) {
	p := DefaultPolicy()

	for _, v := range []string{"soon", "-5", "NaN", " "} {
		h := http.Header{}
		h.Set("Retry-After", v)
		assert.Equal(t, 2*time.Second, p.Delay(h, 1), "hint %q", v)
	}
}

func TestDelay_OutOfRangeHintFallsBack(t *testing.T) {
	p := DefaultPolicy()

	for _, v := range []string{"1e12", "9223372037", "Inf", "1e400"} {
		h := http.Header{}
		h.Set("Retry-After", v)

		d := p.Delay(h, 2)
		assert.GreaterOrEqual(t, d, time.Duration(0), "hint %q", v)
		assert.Equal(t, 4*time.Second, d, "hint %q", v)
	}
}

func TestDelay_HTTPDateHint(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p := DefaultPolicy()
	p.now = func() time.Time { return now }

	h := http.Header{}
	h.Set("Retry-After", now.Add(30*time.Second).Format(http.TimeFormat))
	assert.Equal(t, 30*time.Second, p.Delay(h, 4))

	h.Set("Retry-After", now.Add(-time.Minute).Format(http.TimeFormat))
	assert.Equal(t, time.Duration(0), p.Delay(h, 4))
}

func TestBackoff_Cap(t *testing.T) {
	p := DefaultPolicy()
	p.MaxDelay = 5 * time.Second

	assert.Equal(t, 4*time.Second, p.Backoff(2))
	assert.Equal(t, 5*time.Second, p.Backoff(3))
	assert.Equal(t, 5*time.Second, p.Backoff(60))
}

func TestBackoff_Uncapped(t *testing.T) {
	p := DefaultPolicy()
	p.MaxDelay = -1

	assert.Equal(t, 1024*time.Second, p.Backoff(10))
}

func TestBackoff_ZeroMaxDelayUsesDefaultCap(t *testing.T) {
	p := DefaultPolicy()
	p.MaxDelay = 0

	assert.Equal(t, DefaultMaxDelay, p.Backoff(10))
	assert.Equal(t, 64*time.Second, p.Backoff(6))
}

func TestBackoff_ZeroValuePolicy(t *testing.T) {
	var p Policy

	assert.Equal(t, 1*time.Second, p.Backoff(0))
	assert.Equal(t, 4*time.Second, p.Backoff(2))
	assert.Equal(t, 1*time.Second, p.Backoff(-3))
}
