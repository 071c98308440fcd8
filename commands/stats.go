package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/analyzer-badges/commands/flags"
	"github.com/smartcontractkit/analyzer-badges/commands/text"
	"github.com/smartcontractkit/analyzer-badges/statistics"
)

var (
	statsShort = "Print badge statistics"

	statsLong = text.LongDesc(`
		Prints the number of committed badge requests, registered badges and projects held by
		the configured statistics store.
	`)

	statsExample = text.Examples(`
		# Print statistics from the postgres store
		BADGES_STATISTICS_DRIVER=postgres DATABASE_URL=postgres://localhost/badges badges stats
	`)
)

// newStatsCmd creates the "stats" subcommand.
func newStatsCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stats",
		Short:   statsShort,
		Long:    statsLong,
		Example: statsExample,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd, cfg, flags.MustString(cmd.Flags().GetString("config")))
		},
	}

	flags.Config(cmd)

	return cmd
}

// runStats executes the stats command logic.
func runStats(cmd *cobra.Command, cfg Config, configPath string) error {
	ctx := cmd.Context()

	appCfg, err := loadConfig(cfg, configPath)
	if err != nil {
		return err
	}

	var summary statistics.Summary
	err = withStore(ctx, cfg, appCfg.Statistics, func(store statistics.Store) error {
		summary, err = store.Summary(ctx)

		return err
	})
	if err != nil {
		return fmt.Errorf("failed to read statistics: %w", err)
	}

	cmd.Printf("📊 Badge statistics (%s)\n", driverName(appCfg.Statistics))
	cmd.Printf("  requests: %d\n", summary.Requests)
	cmd.Printf("  badges:   %d\n", summary.Badges)
	cmd.Printf("  projects: %d\n", summary.Projects)

	return nil
}

func driverName(cfg statistics.Config) string {
	if cfg.Driver == "" {
		return statistics.DriverMemory
	}

	return cfg.Driver
}
