package scan

import (
	"context"
	"sync"

	"github.com/enzomchang/wifi-sentinel/internal/domain/network"
)

// Sequence replays a fixed list of identifiers in order, then blocks until
// the context is cancelled. It drives exact scenarios in tests.
type Sequence struct {
	mu    sync.Mutex
	items []network.Identifier
	next  int
}

// NewSequence creates a source replaying items in the given order.
func NewSequence(items ...network.Identifier) *Sequence {
	copied := make([]network.Identifier, len(items))
	copy(copied, items)

	return &Sequence{items: copied}
}

// Next returns the next item, or blocks once the sequence is exhausted.
func (s *Sequence) Next(ctx context.Context) (network.Identifier, error) {
	s.mu.Lock()
	if s.next < len(s.items) {
		item := s.items[s.next]
		s.next++
		s.mu.Unlock()

		return item, nil
	}
	s.mu.Unlock()

	<-ctx.Done()

	return "", ctx.Err()
}
