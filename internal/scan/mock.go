package scan

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"github.com/enzomchang/wifi-sentinel/internal/domain/network"
)

// ErrNoCandidates is returned when a mock source is created with an empty pool.
var ErrNoCandidates = errors.New("candidate pool is empty")

// Mock selects uniformly at random from a fixed candidate pool.
// It stands in for a real scanning driver during simulation.
type Mock struct {
	// mu guards rng, which is not safe for concurrent use.
	mu         sync.Mutex
	rng        *rand.Rand
	candidates []network.Identifier
}

// NewMock creates a mock source over the provided pool, seeded for
// reproducible sequences. The pool is copied.
func NewMock(candidates []network.Identifier, seed int64) (*Mock, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	copied := make([]network.Identifier, len(candidates))
	copy(copied, candidates)

	return &Mock{
		rng:        rand.New(rand.NewSource(seed)), //nolint:gosec // Mock data only, not security sensitive.
		candidates: copied,
	}, nil
}

// Next returns a random candidate. It never blocks longer than the ctx check.
func (m *Mock) Next(ctx context.Context) (network.Identifier, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.candidates[m.rng.Intn(len(m.candidates))], nil
}
