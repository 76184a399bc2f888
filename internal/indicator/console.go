package indicator

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/fatih/color"
)

// Console renders the indicator as colored state lines on a writer.
// A transition to ACTIVE prints in red, a transition to INACTIVE in green;
// repeated Set calls with an unchanged state print nothing.
type Console struct {
	// writeMu serializes output so lines from concurrent writers never interleave.
	writeMu sync.Mutex
	// out receives the rendered lines.
	out io.Writer
	// active holds the current binary state.
	active atomic.Bool

	activeLabel   string
	inactiveLabel string
}

// NewConsole creates a console indicator writing to out.
// If out is nil, os.Stdout is used.
func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}

	return &Console{
		out:           out,
		activeLabel:   color.New(color.FgRed, color.Bold).Sprint("ACTIVE"),
		inactiveLabel: color.New(color.FgGreen).Sprint("INACTIVE"),
	}
}

// Set drives the output line, printing only on state transitions.
func (c *Console) Set(active bool) {
	if c.active.Swap(active) == active {
		return
	}

	label := c.inactiveLabel
	if active {
		label = c.activeLabel
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	_, _ = fmt.Fprintf(c.out, "indicator: %s\n", label)
}

// Active reports the current state.
func (c *Console) Active() bool {
	return c.active.Load()
}
