// Package commands provides the badges CLI.
package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/analyzer-badges/commands/text"
	"github.com/smartcontractkit/analyzer-badges/config"
	"github.com/smartcontractkit/analyzer-badges/pkg/logger"
	"github.com/smartcontractkit/analyzer-badges/statistics"
)

var (
	badgesShort = "Analyzer status badges"

	badgesLong = text.LongDesc(`
		Builds status badges summarizing the result of a code analysis run and keeps request
		statistics.

		Configuration is read from the file given by --config and overridden by BADGES_*
		environment variables. When the file does not exist only the environment is used.
	`)
)

// Config holds the configuration for the badges commands.
type Config struct {
	// Logger is the logger used before the configuration is loaded. Required.
	Logger logger.Logger

	// Deps holds optional dependencies that can be overridden.
	// If fields are nil, production defaults are used.
	Deps Deps
}

// Validate checks that all required configuration fields are set.
func (c Config) Validate() error {
	if c.Logger == nil {
		return errors.New("commands.Config: missing required fields: Logger")
	}

	return nil
}

// deps returns the Deps with defaults applied.
func (c *Config) deps() *Deps {
	c.Deps.applyDefaults()

	return &c.Deps
}

// NewCommand creates the badges root command with all subcommands.
func NewCommand(cfg Config) (*cobra.Command, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.deps()

	cmd := &cobra.Command{
		Use:          "badges",
		Short:        badgesShort,
		Long:         badgesLong,
		SilenceUsage: true,
	}

	cmd.AddCommand(newBuildCmd(cfg))
	cmd.AddCommand(newStatsCmd(cfg))
	cmd.AddCommand(newRegisterCmd(cfg))

	return cmd, nil
}

// loadConfig loads the configuration at path.
func loadConfig(cfg Config, path string) (*config.Config, error) {
	cfg.Logger.Debugw("Loading config", "path", path)

	appCfg, err := cfg.deps().ConfigLoader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return appCfg, nil
}

// withStore opens the statistics store, runs fn with it and closes it afterwards.
func withStore(
	ctx context.Context, cfg Config, statsCfg statistics.Config, fn func(statistics.Store) error,
) (err error) {
	store, err := cfg.deps().StoreOpener(ctx, statsCfg)
	if err != nil {
		return fmt.Errorf("failed to open statistics store: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close statistics store: %w", cerr))
		}
	}()

	return fn(store)
}
