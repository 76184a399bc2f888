package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/enzomchang/wifi-sentinel/internal/domain/network"
	"github.com/enzomchang/wifi-sentinel/internal/logger"
)

// Config holds the monitor tunables loaded at startup.
type Config struct {
	// QueueCapacity bounds the signal queue between producer and classifier.
	QueueCapacity int `yaml:"queue_capacity"`
	// HeartbeatPeriod is how long the watchdog sleeps between liveness blinks.
	HeartbeatPeriod time.Duration `yaml:"heartbeat_period"`
	// BlinkCount is the number of indicator toggles per liveness blink.
	BlinkCount int `yaml:"blink_count"`
	// BlinkInterval is the delay between indicator toggles within a blink.
	BlinkInterval time.Duration `yaml:"blink_interval"`
	// ScanDelayMin and ScanDelayMax bound the randomized pause between
	// producer pushes, simulating bursty signal arrival.
	ScanDelayMin time.Duration `yaml:"scan_delay_min"`
	ScanDelayMax time.Duration `yaml:"scan_delay_max"`
	// Candidates is the mock scan driver's identifier pool.
	Candidates []string `yaml:"candidates"`
	// Trusted is the allow-list loaded into the trusted set.
	Trusted []string `yaml:"trusted"`
	// LogLevel selects the minimum level for log output.
	LogLevel string `yaml:"log_level"`
}

const (
	// DefaultConfigFilename is the default filename for monitor settings.
	DefaultConfigFilename = "wifi-sentinel.yaml"

	// DefaultQueueCapacity bounds the signal queue when not configured.
	DefaultQueueCapacity = 10

	// DefaultHeartbeatPeriod is the watchdog sleep between liveness blinks.
	DefaultHeartbeatPeriod = 10 * time.Second

	// DefaultBlinkCount is the number of toggles per liveness blink.
	DefaultBlinkCount = 3

	// DefaultBlinkInterval is the delay between toggles within a blink.
	DefaultBlinkInterval = 100 * time.Millisecond

	// DefaultScanDelayMin and DefaultScanDelayMax bound the producer pause.
	DefaultScanDelayMin = 2 * time.Second
	DefaultScanDelayMax = 5 * time.Second

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errNegativeQueueCapacity is returned for explicitly negative capacities.
	errNegativeQueueCapacity = errors.New("queue capacity must be positive")
	// errBadDelayRange is returned when the scan delay bounds are inverted.
	errBadDelayRange = errors.New("scan delay minimum exceeds maximum")
	// errNoTrusted is returned when the trusted list is empty.
	errNoTrusted = errors.New("trusted list must not be empty")
	// errNoCandidates is returned when the candidate pool is empty.
	errNoCandidates = errors.New("candidate pool must not be empty")
)

// Default returns the reference configuration: a pool of five candidate
// networks, three of which are trusted.
func Default() *Config {
	return &Config{
		QueueCapacity:   DefaultQueueCapacity,
		HeartbeatPeriod: DefaultHeartbeatPeriod,
		BlinkCount:      DefaultBlinkCount,
		BlinkInterval:   DefaultBlinkInterval,
		ScanDelayMin:    DefaultScanDelayMin,
		ScanDelayMax:    DefaultScanDelayMax,
		Candidates: []string{
			"REDE_SEGURA_1",
			"Corporate_WiFi",
			"Home_Office_Net",
			"WIFI_DA_PRACA",
			"CAFE_GRATIS",
		},
		Trusted: []string{
			"REDE_SEGURA_1",
			"Corporate_WiFi",
			"Home_Office_Net",
		},
		LogLevel: DefaultLogLevel,
	}
}

// Load reads configuration from the provided path and validates it.
// A missing file is not an error: the monitor runs with Default settings,
// so the binary works out of the box.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()

			return cfg, nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided configuration, filling defaults for
// unspecified fields and rejecting contradictory values.
//
//nolint:cyclop // Sequential field checks, splitting would reduce clarity.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.QueueCapacity == 0 {
		cfg.QueueCapacity = DefaultQueueCapacity
	}

	if cfg.QueueCapacity < 0 {
		return errNegativeQueueCapacity
	}

	if cfg.HeartbeatPeriod <= 0 {
		cfg.HeartbeatPeriod = DefaultHeartbeatPeriod
	}

	if cfg.BlinkCount <= 0 {
		cfg.BlinkCount = DefaultBlinkCount
	}

	if cfg.BlinkInterval <= 0 {
		cfg.BlinkInterval = DefaultBlinkInterval
	}

	if cfg.ScanDelayMin <= 0 {
		cfg.ScanDelayMin = DefaultScanDelayMin
	}

	if cfg.ScanDelayMax <= 0 {
		cfg.ScanDelayMax = DefaultScanDelayMax
	}

	if cfg.ScanDelayMin > cfg.ScanDelayMax {
		return errBadDelayRange
	}

	if len(cfg.Candidates) == 0 {
		return errNoCandidates
	}

	if len(cfg.Trusted) == 0 {
		return errNoTrusted
	}

	if _, err := parseIdentifiers(cfg.Candidates); err != nil {
		return fmt.Errorf("candidate pool: %w", err)
	}

	if _, err := parseIdentifiers(cfg.Trusted); err != nil {
		return fmt.Errorf("trusted list: %w", err)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}

	return nil
}

// CandidateIdentifiers returns the candidate pool as validated identifiers.
func (c *Config) CandidateIdentifiers() ([]network.Identifier, error) {
	return parseIdentifiers(c.Candidates)
}

// TrustedIdentifiers returns the trusted list as validated identifiers.
func (c *Config) TrustedIdentifiers() ([]network.Identifier, error) {
	return parseIdentifiers(c.Trusted)
}

// parseIdentifiers converts raw strings, failing on the first invalid entry.
func parseIdentifiers(raw []string) ([]network.Identifier, error) {
	ids := make([]network.Identifier, 0, len(raw))

	for _, s := range raw {
		id, err := network.NewIdentifier(s)
		if err != nil {
			return nil, fmt.Errorf("identifier %q: %w", s, err)
		}

		ids = append(ids, id)
	}

	return ids, nil
}
