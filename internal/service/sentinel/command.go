package sentinel

import (
	"context"
	"fmt"
	"time"

	"github.com/enzomchang/wifi-sentinel/internal/config"
	"github.com/enzomchang/wifi-sentinel/internal/domain/network"
	"github.com/enzomchang/wifi-sentinel/internal/indicator"
	"github.com/enzomchang/wifi-sentinel/internal/logger"
	"github.com/enzomchang/wifi-sentinel/internal/monitor"
	"github.com/enzomchang/wifi-sentinel/internal/queue"
	"github.com/enzomchang/wifi-sentinel/internal/scan"
)

// Options controls the wifi-sentinel process and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// LogLevel provides an optional log level override for the config value.
	LogLevel string
	// Source provides an optional scan source override; when nil, the mock
	// driver over the configured candidate pool is used.
	Source scan.Source
	// Indicator provides an optional indicator override; when nil, the
	// colored console indicator on stdout is used.
	Indicator indicator.Indicator
}

// Run builds the monitor from configuration and blocks until the context is
// cancelled. The monitor itself has no terminal state: it runs until the
// process is halted.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "wifi-sentinel")

	// Load settings from configuration file; a missing file means defaults.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Command line log level overrides the configured one.
	levelName := cfg.LogLevel
	if opts.LogLevel != "" {
		levelName = opts.LogLevel
	}

	if level, ok := logger.ParseLogLevel(levelName); ok {
		logger.SetLevel(level)
	}

	trustedIDs, err := cfg.TrustedIdentifiers()
	if err != nil {
		return fmt.Errorf("trusted list: %w", err)
	}

	trusted := network.NewTrustedSet(trustedIDs)

	q, err := queue.New(cfg.QueueCapacity)
	if err != nil {
		return fmt.Errorf("create signal queue: %w", err)
	}

	source := opts.Source
	if source == nil {
		candidates, candErr := cfg.CandidateIdentifiers()
		if candErr != nil {
			return fmt.Errorf("candidate pool: %w", candErr)
		}

		source, err = scan.NewMock(candidates, time.Now().UnixNano())
		if err != nil {
			return fmt.Errorf("create scan source: %w", err)
		}
	}

	out := opts.Indicator
	if out == nil {
		out = indicator.NewConsole(nil)
	}

	m, err := monitor.New(monitor.Params{
		Source:          source,
		Queue:           q,
		Trusted:         trusted,
		Indicator:       out,
		ScanDelayMin:    cfg.ScanDelayMin,
		ScanDelayMax:    cfg.ScanDelayMax,
		HeartbeatPeriod: cfg.HeartbeatPeriod,
		BlinkCount:      cfg.BlinkCount,
		BlinkInterval:   cfg.BlinkInterval,
	})
	if err != nil {
		return fmt.Errorf("initialise monitor: %w", err)
	}

	logger.InfoKV(ctx, "Alert monitor starting",
		"queue_capacity", q.Cap(),
		"trusted_networks", trusted.Size(),
		"heartbeat_period", cfg.HeartbeatPeriod.String(),
	)

	if err = m.Run(ctx); err != nil {
		return fmt.Errorf("run monitor: %w", err)
	}

	logger.Info(ctx, "Alert monitor stopped")

	return nil
}
