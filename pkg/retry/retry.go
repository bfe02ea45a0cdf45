package retry

import (
	"context"
	"time"
)

// Do runs op up to attempts times with a fixed delay between attempts.
// It returns nil on the first success, the last error once attempts are
// exhausted, or the context error if ctx is cancelled while waiting.
func Do(ctx context.Context, attempts int, delay time.Duration, op func(ctx context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := op(ctx); err != nil {
			lastErr = err
			continue
		}
		return nil
	}

	return lastErr
}
