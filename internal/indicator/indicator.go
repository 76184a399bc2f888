package indicator

// Indicator is the single binary alert output line.
//
// ACTIVE means an alert is in effect or a liveness blink is mid-toggle;
// INACTIVE means the last classification was trusted. There is no other
// encoding. Two tasks write it (classifier and watchdog), so Set and Active
// must be safe for concurrent use.
type Indicator interface {
	// Set drives the output: true for ACTIVE, false for INACTIVE.
	Set(active bool)
	// Active reports the state of the last Set call.
	Active() bool
}
