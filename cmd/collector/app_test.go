package main

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"m365_collector/internal/config"
)

func TestRetryPolicy(t *testing.T) {
	policy := retryPolicy(config.RetryConfig{
		MaxRetries: 3,
		BaseDelay:  500 * time.Millisecond,
		Multiplier: 3,
		MaxDelay:   time.Minute,
	})

	assert.Equal(t, 3, policy.MaxRetries)
	assert.Equal(t, 3.0, policy.Base)
	assert.Equal(t, 500*time.Millisecond, policy.Unit)
	assert.Equal(t, time.Minute, policy.MaxDelay)
}

func TestRetryPolicy_NegativeMaxDelayDisablesCap(t *testing.T) {
	policy := retryPolicy(config.RetryConfig{
		MaxRetries: 5,
		BaseDelay:  time.Second,
		Multiplier: 2,
		MaxDelay:   -1,
	})

	assert.Equal(t, time.Duration(-1), policy.MaxDelay)
	assert.Equal(t, 1024*time.Second, policy.Backoff(10))
}

func TestSetupLogger(t *testing.T) {
	assert.True(t, setupLogger("debug").Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, setupLogger("warn").Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, setupLogger("bogus").Enabled(context.Background(), slog.LevelDebug))
}
