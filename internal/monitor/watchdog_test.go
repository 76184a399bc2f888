package monitor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/enzomchang/wifi-sentinel/internal/indicator"
)

// TestBlinkRestoresAlertingIndicator forces an alert, blinks, and expects
// the indicator active afterward regardless of the toggles in between.
func TestBlinkRestoresAlertingIndicator(t *testing.T) {
	t.Parallel()

	alert := NewAlertState()
	alert.Set(true)

	out := indicator.NewMemory()
	out.Set(true)

	w := NewWatchdog(out, alert, time.Hour, 3, time.Millisecond)
	w.Blink(context.Background())

	require.True(t, out.Active())

	// The initial Set, three toggles, then the restore.
	history := out.History()
	require.Len(t, history, 5)
	require.Equal(t, []bool{true, false, true, false, true}, history)
}

// TestBlinkRestoresClearIndicator repeats the check with no alert in effect.
func TestBlinkRestoresClearIndicator(t *testing.T) {
	t.Parallel()

	alert := NewAlertState()
	out := indicator.NewMemory()

	w := NewWatchdog(out, alert, time.Hour, 3, time.Millisecond)
	w.Blink(context.Background())

	require.False(t, out.Active())
	require.Len(t, out.History(), 4)
}

// TestBlinkRestoresEvenWhenCancelled cancels mid-sequence and still expects
// the indicator restored to the alert state.
func TestBlinkRestoresEvenWhenCancelled(t *testing.T) {
	t.Parallel()

	alert := NewAlertState()
	alert.Set(true)

	out := indicator.NewMemory()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := NewWatchdog(out, alert, time.Hour, 3, 50*time.Millisecond)
	w.Blink(ctx)

	require.True(t, out.Active())
}

// TestWatchdogRunBlinksPeriodically lets the loop fire a few times and then
// exits cleanly on cancellation.
func TestWatchdogRunBlinksPeriodically(t *testing.T) {
	t.Parallel()

	alert := NewAlertState()
	out := indicator.NewMemory()

	w := NewWatchdog(out, alert, 10*time.Millisecond, 2, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- w.Run(ctx)
	}()

	// Each cycle records blinkCount toggles plus a restore.
	require.Eventually(t, func() bool {
		return len(out.History()) >= 6
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	require.False(t, out.Active())
}
