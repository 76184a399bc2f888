package scan

import (
	"context"

	"github.com/enzomchang/wifi-sentinel/internal/domain/network"
)

// Source supplies discovered network identifiers to the producer.
//
// It is the substitution point for a real scanning driver: the producer,
// classifier and watchdog never know where identifiers come from. Next may
// block until a discovery is available and must honor ctx cancellation.
type Source interface {
	Next(ctx context.Context) (network.Identifier, error)
}
