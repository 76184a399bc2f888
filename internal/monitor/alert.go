package monitor

import "sync/atomic"

// AlertState is the shared flag expressing "currently alerting".
//
// The classifier is its only writer; the watchdog reads it to restore the
// indicator after a blink sequence. The atomic underneath guarantees a
// reader sees either the pre- or post-update value, never a torn one.
type AlertState struct {
	flag atomic.Bool
}

// NewAlertState returns a cleared (non-alerting) state.
func NewAlertState() *AlertState {
	return &AlertState{}
}

// Set records whether an alert is in effect.
func (a *AlertState) Set(active bool) {
	a.flag.Store(active)
}

// Active reports whether an alert is currently in effect.
func (a *AlertState) Active() bool {
	return a.flag.Load()
}
