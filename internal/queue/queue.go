package queue

import (
	"context"
	"errors"

	"github.com/enzomchang/wifi-sentinel/internal/domain/network"
)

// DefaultCapacity is the queue size used when no capacity is configured.
const DefaultCapacity = 10

// ErrInvalidCapacity is returned when a queue is created with a non-positive capacity.
var ErrInvalidCapacity = errors.New("queue capacity must be positive")

// Queue is a bounded FIFO carrying discovered identifiers from the producer
// to the classifier. A full queue suspends the pusher and an empty queue
// suspends the popper; items are never dropped or reordered.
//
// The buffered channel underneath makes concurrent Push/Pop safe and keeps
// every wait a true suspension rather than a spin.
type Queue struct {
	items chan network.Identifier
}

// New creates a queue with the given capacity.
// Creation failure is the only fatal condition this package knows; callers
// must abort initialization rather than run without a queue.
func New(capacity int) (*Queue, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Queue{items: make(chan network.Identifier, capacity)}, nil
}

// Push enqueues id, blocking while the queue is full.
// Blocking here is backpressure, not an error: the only way Push fails is
// cancellation of ctx, which unblocks a suspended pusher during shutdown.
func (q *Queue) Push(ctx context.Context, id network.Identifier) error {
	select {
	case q.items <- id:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pop dequeues the oldest identifier, blocking while the queue is empty.
// As with Push, the only failure is cancellation of ctx.
func (q *Queue) Pop(ctx context.Context) (network.Identifier, error) {
	select {
	case id := <-q.items:
		return id, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Len returns the number of identifiers currently queued.
func (q *Queue) Len() int {
	return len(q.items)
}

// Cap returns the queue capacity.
func (q *Queue) Cap() int {
	return cap(q.items)
}
