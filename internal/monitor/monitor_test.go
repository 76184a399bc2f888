package monitor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/enzomchang/wifi-sentinel/internal/indicator"
	"github.com/enzomchang/wifi-sentinel/internal/queue"
	"github.com/enzomchang/wifi-sentinel/internal/scan"
)

// TestNewValidatesCollaborators rejects missing shared objects.
func TestNewValidatesCollaborators(t *testing.T) {
	t.Parallel()

	q, err := queue.New(1)
	require.NoError(t, err)

	source := scan.NewSequence()
	trusted := referenceTrustedSet()
	out := indicator.NewMemory()

	_, err = New(Params{Queue: q, Trusted: trusted, Indicator: out})
	require.ErrorIs(t, err, errNoSource)

	_, err = New(Params{Source: source, Trusted: trusted, Indicator: out})
	require.ErrorIs(t, err, errNoQueue)

	_, err = New(Params{Source: source, Queue: q, Indicator: out})
	require.ErrorIs(t, err, errNoTrustedSet)

	_, err = New(Params{Source: source, Queue: q, Trusted: trusted})
	require.ErrorIs(t, err, errNoIndicator)

	m, err := New(Params{Source: source, Queue: q, Trusted: trusted, Indicator: out})
	require.NoError(t, err)
	require.False(t, m.Alert().Active())
}

// TestPipelineScenario drives the reference scenario end to end: an unknown
// network raises the alert, then a trusted one clears it.
func TestPipelineScenario(t *testing.T) {
	t.Parallel()

	q, err := queue.New(10)
	require.NoError(t, err)

	out := indicator.NewMemory()

	m, err := New(Params{
		Source:    scan.NewSequence("WIFI_DA_PRACA", "Corporate_WiFi"),
		Queue:     q,
		Trusted:   referenceTrustedSet(),
		Indicator: out,
		// Keep the producer fast and the watchdog quiet for determinism.
		ScanDelayMin:    time.Millisecond,
		ScanDelayMax:    time.Millisecond,
		HeartbeatPeriod: time.Hour,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- m.Run(ctx)
	}()

	// Both verdicts land in push order: alert raised, then cleared.
	require.Eventually(t, func() bool {
		return len(out.History()) == 2
	}, 2*time.Second, 5*time.Millisecond)
	require.Equal(t, []bool{true, false}, out.History())
	require.False(t, m.Alert().Active())
	require.False(t, out.Active())

	cancel()
	require.NoError(t, <-done)
}

// TestPipelineWithWatchdog lets the watchdog blink between classifications
// and verifies the indicator always settles on the alert state.
func TestPipelineWithWatchdog(t *testing.T) {
	t.Parallel()

	q, err := queue.New(10)
	require.NoError(t, err)

	out := indicator.NewMemory()

	m, err := New(Params{
		Source:          scan.NewSequence("WIFI_DA_PRACA"),
		Queue:           q,
		Trusted:         referenceTrustedSet(),
		Indicator:       out,
		ScanDelayMin:    time.Millisecond,
		ScanDelayMax:    time.Millisecond,
		HeartbeatPeriod: 20 * time.Millisecond,
		BlinkCount:      3,
		BlinkInterval:   time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- m.Run(ctx)
	}()

	// Wait for the alert verdict and at least one full blink cycle.
	require.Eventually(t, func() bool {
		return m.Alert().Active() && len(out.History()) >= 5
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	// After the final blink's restore the indicator matches the alert state.
	require.True(t, out.Active())
}
