package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"m365_collector/internal/domain"
	"m365_collector/internal/retry"
)

// Fetcher issues directory API calls and retries throttled responses. Every
// retry decision is logged to the retry store before sleeping.
type Fetcher struct {
	policy  retry.Policy
	retries RetryStore
	sleep   func(ctx context.Context, d time.Duration) error
	logger  *slog.Logger
}

func NewFetcher(policy retry.Policy, retries RetryStore, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		policy:  policy,
		retries: retries,
		sleep:   sleepContext,
		logger:  logger,
	}
}

// fetchWithRetry calls fn until it succeeds, fails with a non-throttle error,
// or the retry budget runs out.
func fetchWithRetry[T any](ctx context.Context, f *Fetcher, runID int64, endpoint string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	for attempt := 0; ; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}

		var upErr *domain.UpstreamError
		if !errors.As(err, &upErr) || !retry.IsThrottled(upErr.StatusCode) {
			return zero, fmt.Errorf("fetch %s: %w", endpoint, err)
		}

		if attempt >= f.policy.MaxRetries {
			return zero, fmt.Errorf("fetch %s: %w after %d attempts", endpoint, domain.ErrThrottleExhausted, attempt+1)
		}

		delay := f.policy.Delay(upErr.Header, attempt)
		rec := &domain.RetryRecord{
			RunID:       runID,
			Endpoint:    upErr.Endpoint,
			Attempt:     attempt + 1,
			DelayMillis: delay.Milliseconds(),
			Reason:      fmt.Sprintf("rate limited (%d)", upErr.StatusCode),
		}
		if rec.Endpoint == "" {
			rec.Endpoint = endpoint
		}
		if err := f.retries.Record(ctx, rec); err != nil {
			return zero, fmt.Errorf("record retry: %w: %w", domain.ErrStoreWrite, err)
		}

		f.logger.Warn("request throttled, backing off",
			"endpoint", rec.Endpoint,
			"attempt", rec.Attempt,
			"delay", delay,
		)

		if err := f.sleep(ctx, delay); err != nil {
			return zero, err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
