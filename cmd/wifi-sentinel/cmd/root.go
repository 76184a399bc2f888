package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/enzomchang/wifi-sentinel/internal/config"
	"github.com/enzomchang/wifi-sentinel/internal/service/sentinel"
	"github.com/enzomchang/wifi-sentinel/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// logLevel provides an optional override for the configured log level.
	logLevel string

	// rootCmd represents the base command running the alert monitor.
	rootCmd = &cobra.Command{
		Use:   "wifi-sentinel",
		Short: "Run the simulated network-intrusion alert monitor.",
		Long: `Runs the alert monitor: a mock scan driver discovers network identifiers,
a classifier checks each one against the trusted list and drives the alert
indicator, and a watchdog blinks the indicator periodically to prove the
monitor is alive.

Settings are read from a YAML file; a missing file means the reference
defaults (five candidate networks, three of them trusted). The process runs
until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Stop on SIGINT/SIGTERM; the monitor otherwise runs forever.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &sentinel.Options{
				ConfigPath: configPath,
				LogLevel:   logLevel,
			}

			return sentinel.Run(ctx, options)
		},
	}

	// initCmd materializes the default settings file for editing.
	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file.",
		Long:  "Writes the reference configuration (queue capacity, heartbeat and blink timing, candidate pool and trusted list) to the settings path so it can be edited.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Save(configPath, config.Default()); err != nil {
				return err
			}

			path := configPath
			if path == "" {
				path = config.DefaultConfigFilename
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote default settings to %s\n", path)

			return nil
		},
	}
)

// Execute runs the wifi-sentinel CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(initCmd)
}
