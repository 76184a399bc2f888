package monitor

import (
	"context"

	"github.com/enzomchang/wifi-sentinel/internal/domain/network"
	"github.com/enzomchang/wifi-sentinel/internal/indicator"
	"github.com/enzomchang/wifi-sentinel/internal/logger"
	"github.com/enzomchang/wifi-sentinel/internal/queue"
)

// Classifier consumes queued identifiers, checks them against the trusted
// set and drives the alert state and indicator.
//
// An untrusted identifier is the expected alert outcome, not a failure:
// classification always succeeds.
type Classifier struct {
	queue   *queue.Queue
	trusted *network.TrustedSet
	alert   *AlertState
	out     indicator.Indicator
}

// NewClassifier wires a classifier to its queue, trusted set, alert state
// and indicator output.
func NewClassifier(q *queue.Queue, trusted *network.TrustedSet, alert *AlertState, out indicator.Indicator) *Classifier {
	return &Classifier{
		queue:   q,
		trusted: trusted,
		alert:   alert,
		out:     out,
	}
}

// Run pops and classifies identifiers until the context is cancelled.
func (c *Classifier) Run(ctx context.Context) error {
	ctx = logger.WithName(ctx, "classifier")

	for {
		id, err := c.queue.Pop(ctx)
		if err != nil {
			logger.Info(ctx, "Context canceled, exiting")
			return nil
		}

		c.Classify(ctx, id)
	}
}

// Classify records a verdict for a single identifier and reports it.
//
// The trusted-set lock lives inside Contains, so it is held for the
// membership scan only; alert, indicator and log writes happen after
// release.
func (c *Classifier) Classify(ctx context.Context, id network.Identifier) bool {
	isTrusted := c.trusted.Contains(id)

	c.alert.Set(!isTrusted)
	c.out.Set(!isTrusted)

	if isTrusted {
		logger.InfoKV(ctx, "Trusted network seen", "identifier", id.String())
	} else {
		logger.WarnKV(ctx, "ALERT: unknown network detected", "identifier", id.String())
	}

	return isTrusted
}
