package monitor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/enzomchang/wifi-sentinel/internal/domain/network"
	"github.com/enzomchang/wifi-sentinel/internal/indicator"
	"github.com/enzomchang/wifi-sentinel/internal/queue"
	"github.com/enzomchang/wifi-sentinel/internal/scan"
)

// Params collects the collaborators and tunables for a Monitor.
// Every shared object is passed in explicitly: there are no package globals.
type Params struct {
	// Source supplies discovered identifiers to the producer.
	Source scan.Source
	// Queue transports identifiers from producer to classifier.
	Queue *queue.Queue
	// Trusted is the allow-list the classifier checks against.
	Trusted *network.TrustedSet
	// Indicator is the binary alert output shared by classifier and watchdog.
	Indicator indicator.Indicator

	// ScanDelayMin and ScanDelayMax bound the producer's randomized pause.
	ScanDelayMin time.Duration
	ScanDelayMax time.Duration
	// HeartbeatPeriod is the watchdog sleep between liveness blinks.
	HeartbeatPeriod time.Duration
	// BlinkCount and BlinkInterval shape the liveness blink sequence.
	BlinkCount    int
	BlinkInterval time.Duration
}

var (
	// errNoSource is returned when a monitor is built without a scan source.
	errNoSource = errors.New("scan source is required")
	// errNoQueue is returned when a monitor is built without a signal queue.
	errNoQueue = errors.New("signal queue is required")
	// errNoTrustedSet is returned when a monitor is built without a trusted set.
	errNoTrustedSet = errors.New("trusted set is required")
	// errNoIndicator is returned when a monitor is built without an indicator.
	errNoIndicator = errors.New("indicator is required")
)

// Monitor owns the three tasks and the alert state they share.
type Monitor struct {
	producer   *Producer
	classifier *Classifier
	watchdog   *Watchdog
	alert      *AlertState
}

// New validates the collaborators and wires the three tasks around a fresh
// (cleared) alert state.
func New(p Params) (*Monitor, error) {
	switch {
	case p.Source == nil:
		return nil, errNoSource
	case p.Queue == nil:
		return nil, errNoQueue
	case p.Trusted == nil:
		return nil, errNoTrustedSet
	case p.Indicator == nil:
		return nil, errNoIndicator
	}

	alert := NewAlertState()

	return &Monitor{
		producer:   NewProducer(p.Source, p.Queue, p.ScanDelayMin, p.ScanDelayMax),
		classifier: NewClassifier(p.Queue, p.Trusted, alert, p.Indicator),
		watchdog:   NewWatchdog(p.Indicator, alert, p.HeartbeatPeriod, p.BlinkCount, p.BlinkInterval),
		alert:      alert,
	}, nil
}

// Alert exposes the shared alert state for observation.
func (m *Monitor) Alert() *AlertState {
	return m.alert
}

// Run starts the producer, classifier and watchdog and blocks until all
// three return. In production they run until the process is halted; the
// only clean way out is cancellation of ctx.
func (m *Monitor) Run(ctx context.Context) error {
	tasks := []func(context.Context) error{
		m.producer.Run,
		m.classifier.Run,
		m.watchdog.Run,
	}

	var (
		wg      sync.WaitGroup
		errsMu  sync.Mutex
		runErrs []error
	)

	for _, task := range tasks {
		task := task

		wg.Add(1)

		go func() {
			defer wg.Done()

			if err := task(ctx); err != nil {
				errsMu.Lock()
				runErrs = append(runErrs, err)
				errsMu.Unlock()
			}
		}()
	}

	wg.Wait()

	return errors.Join(runErrs...)
}
