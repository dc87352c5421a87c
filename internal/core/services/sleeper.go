package services

import (
	"context"
	"time"
)

// Sleeper pauses for d, honoring context cancellation. The auth and payment
// services use it for their simulated-latency windows; tests inject a no-op.
type Sleeper func(ctx context.Context, d time.Duration) error

// DefaultSleeper waits on a timer or the context, whichever fires first
func DefaultSleeper(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// NopSleeper returns immediately. For tests.
func NopSleeper(ctx context.Context, d time.Duration) error {
	return nil
}
