// Package sim provides in-process stand-ins for the external collaborators
// (authentication, payment, assistant). Each one waits a configurable delay
// to mimic network latency, respecting context cancellation.
package sim

import (
	"context"
	"time"
)

// wait sleeps for d or until ctx is done, whichever comes first.
func wait(ctx context.Context, d time.Duration) error {
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
