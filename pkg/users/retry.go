package users

import (
	"context"
	"time"
)

// RetryPolicy drives retryWithBackoff: up to MaxAttempts total attempts with
// exponential backoff between them, starting at BaseDelay and capped at
// MaxDelay.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   1 * time.Second,
		MaxDelay:    10 * time.Second,
	}
}

// retryWithBackoff runs fn until it succeeds, fails with a non-retryable
// error, the attempts run out, or ctx is done. The last retryable error is
// returned on exhaustion; nothing is swallowed.
func retryWithBackoff(
	ctx context.Context,
	policy RetryPolicy,
	retryable func(error) bool,
	fn func(ctx context.Context) error,
) error {
	delay := policy.BaseDelay
	var lastErr error

	for attempt := 0; attempt < policy.MaxAttempts; attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
			delay *= 2
			if delay > policy.MaxDelay {
				delay = policy.MaxDelay
			}
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
		lastErr = err
	}

	return lastErr
}
