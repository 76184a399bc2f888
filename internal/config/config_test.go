package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestValidate checks default filling and rejection of contradictory values.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Nil config.
	require.Error(t, Validate(nil))

	// Zero values get defaults, but lists are required.
	cfg := new(Config)
	require.Error(t, Validate(cfg))

	cfg = Default()
	require.NoError(t, Validate(cfg))
	require.Equal(t, DefaultQueueCapacity, cfg.QueueCapacity)
	require.Equal(t, DefaultHeartbeatPeriod, cfg.HeartbeatPeriod)

	// Negative capacity is rejected, not defaulted.
	cfg = Default()
	cfg.QueueCapacity = -1
	require.ErrorIs(t, Validate(cfg), errNegativeQueueCapacity)

	// Inverted delay range.
	cfg = Default()
	cfg.ScanDelayMin = 5 * time.Second
	cfg.ScanDelayMax = 2 * time.Second
	require.ErrorIs(t, Validate(cfg), errBadDelayRange)

	// Empty trusted list.
	cfg = Default()
	cfg.Trusted = nil
	require.ErrorIs(t, Validate(cfg), errNoTrusted)

	// Malformed identifier in the pool.
	cfg = Default()
	cfg.Candidates = append(cfg.Candidates, strings.Repeat("x", 64))
	require.Error(t, Validate(cfg))

	// Unknown log level.
	cfg = Default()
	cfg.LogLevel = "verbose"
	require.Error(t, Validate(cfg))
}

// TestLoadMissingFileUsesDefaults ensures the monitor runs without a settings file.
func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")

	cfg := Default()
	cfg.QueueCapacity = 4
	cfg.HeartbeatPeriod = 2 * time.Second
	cfg.Trusted = []string{"Corporate_WiFi"}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)

	// File exists with restricted permissions.
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(DefaultFilePermissions), info.Mode().Perm())
}

// TestIdentifierAccessors converts the raw lists into domain identifiers.
func TestIdentifierAccessors(t *testing.T) {
	t.Parallel()

	cfg := Default()

	candidates, err := cfg.CandidateIdentifiers()
	require.NoError(t, err)
	require.Len(t, candidates, 5)

	trusted, err := cfg.TrustedIdentifiers()
	require.NoError(t, err)
	require.Len(t, trusted, 3)

	cfg.Trusted = []string{""}
	_, err = cfg.TrustedIdentifiers()
	require.Error(t, err)
}
