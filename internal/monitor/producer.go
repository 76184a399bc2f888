package monitor

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/enzomchang/wifi-sentinel/internal/logger"
	"github.com/enzomchang/wifi-sentinel/internal/queue"
	"github.com/enzomchang/wifi-sentinel/internal/scan"
)

// Producer pulls discovered identifiers from a scan source and pushes them
// onto the signal queue, pausing a randomized interval between pushes.
//
// The push blocks while the queue is full: that is backpressure, not an
// error, and the producer never drops a discovery.
type Producer struct {
	source   scan.Source
	queue    *queue.Queue
	delayMin time.Duration
	delayMax time.Duration
	rng      *rand.Rand
}

// NewProducer wires a producer to its source and queue.
// Non-positive delay bounds fall back to the reference 2 to 5 second range.
func NewProducer(source scan.Source, q *queue.Queue, delayMin, delayMax time.Duration) *Producer {
	if delayMin <= 0 {
		delayMin = 2 * time.Second
	}

	if delayMax < delayMin {
		delayMax = delayMin
	}

	return &Producer{
		source:   source,
		queue:    q,
		delayMin: delayMin,
		delayMax: delayMax,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // Timing jitter only.
	}
}

// Run emits discoveries until the context is cancelled.
func (p *Producer) Run(ctx context.Context) error {
	ctx = logger.WithName(ctx, "producer")

	for {
		id, err := p.source.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				logger.Info(ctx, "Context canceled, exiting")
				return nil
			}

			return fmt.Errorf("next discovery: %w", err)
		}

		if err = p.queue.Push(ctx, id); err != nil {
			logger.Info(ctx, "Context canceled, exiting")
			return nil
		}

		logger.InfoKV(ctx, "Discovered network queued", "identifier", id.String(), "queue_len", p.queue.Len())

		if !sleep(ctx, p.nextDelay()) {
			logger.Info(ctx, "Context canceled, exiting")
			return nil
		}
	}
}

// nextDelay draws a uniform duration from [delayMin, delayMax].
func (p *Producer) nextDelay() time.Duration {
	spread := p.delayMax - p.delayMin
	if spread <= 0 {
		return p.delayMin
	}

	return p.delayMin + time.Duration(p.rng.Int63n(int64(spread)+1))
}
