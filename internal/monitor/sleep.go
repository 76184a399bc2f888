package monitor

import (
	"context"
	"time"
)

// sleep suspends for d or until ctx is done, reporting whether the full
// duration elapsed. It is a true blocking wait, never a spin.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
