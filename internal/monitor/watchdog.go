package monitor

import (
	"context"
	"time"

	"github.com/enzomchang/wifi-sentinel/internal/indicator"
	"github.com/enzomchang/wifi-sentinel/internal/logger"
)

// Watchdog proves the monitor is alive independent of traffic volume.
//
// Each period it logs a liveness line and blinks the indicator, then
// restores the indicator to exactly what the alert state demands. It must
// never clear or set an alert on its own: the classifier owns that verdict.
type Watchdog struct {
	out           indicator.Indicator
	alert         *AlertState
	period        time.Duration
	blinkCount    int
	blinkInterval time.Duration
}

// NewWatchdog wires a watchdog to the indicator and the alert state it
// restores from. Non-positive tunables fall back to the reference values
// (10 s period, 3 toggles, 100 ms apart).
func NewWatchdog(out indicator.Indicator, alert *AlertState, period time.Duration, blinkCount int, blinkInterval time.Duration) *Watchdog {
	if period <= 0 {
		period = 10 * time.Second
	}

	if blinkCount <= 0 {
		blinkCount = 3
	}

	if blinkInterval <= 0 {
		blinkInterval = 100 * time.Millisecond
	}

	return &Watchdog{
		out:           out,
		alert:         alert,
		period:        period,
		blinkCount:    blinkCount,
		blinkInterval: blinkInterval,
	}
}

// Run blinks at a fixed period from when it last woke until the context is
// cancelled. Drift relative to wall clock is acceptable.
func (w *Watchdog) Run(ctx context.Context) error {
	ctx = logger.WithName(ctx, "watchdog")

	for {
		if !sleep(ctx, w.period) {
			logger.Info(ctx, "Context canceled, exiting")
			return nil
		}

		logger.InfoKV(ctx, "Monitor alive", "alerting", w.alert.Active())
		w.Blink(ctx)
	}
}

// Blink toggles the indicator blinkCount times, then restores it to the
// current alert state. The restore runs even when the context is cancelled
// mid-sequence, so the indicator is never left in an arbitrary post-blink
// state.
func (w *Watchdog) Blink(ctx context.Context) {
	state := w.out.Active()

	for i := 0; i < w.blinkCount; i++ {
		state = !state
		w.out.Set(state)

		if !sleep(ctx, w.blinkInterval) {
			break
		}
	}

	w.out.Set(w.alert.Active())
}
