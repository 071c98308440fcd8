package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/analyzer-badges/analyzer"
	"github.com/smartcontractkit/analyzer-badges/badge"
	"github.com/smartcontractkit/analyzer-badges/commands/flags"
	"github.com/smartcontractkit/analyzer-badges/commands/text"
	"github.com/smartcontractkit/analyzer-badges/statistics"
)

var (
	buildShort = "Build a badge from an analyzer report"

	buildLong = text.LongDesc(`
		Reads an analyzer report and requests the badge summarizing it from the rendering
		service. The request is counted in the statistics store.

		When the report cannot be used a fallback badge is served instead:
		  - pending, while the analysis is queued or running
		  - inaccessible, for any other failure
	`)

	buildExample = text.Examples(`
		# Build a badge and write it to a file
		badges build --report staticcheck.yaml --out badge.svg

		# Serve the pending badge until the report has been written
		badges build --report staticcheck.yaml --pending-when-missing > badge.svg

		# Exit with an error when a fallback badge was served
		badges build --report staticcheck.yaml --out badge.svg --fail-on-fallback
	`)
)

type buildFlags struct {
	configPath         string
	report             string
	out                string
	label              string
	pendingWhenMissing bool
	failOnFallback     bool
}

// newBuildCmd creates the "build" subcommand.
func newBuildCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "build",
		Short:   buildShort,
		Long:    buildLong,
		Example: buildExample,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := buildFlags{
				configPath:         flags.MustString(cmd.Flags().GetString("config")),
				report:             flags.MustString(cmd.Flags().GetString("report")),
				out:                flags.MustString(cmd.Flags().GetString("out")),
				label:              flags.MustString(cmd.Flags().GetString("label")),
				pendingWhenMissing: flags.MustBool(cmd.Flags().GetBool("pending-when-missing")),
				failOnFallback:     flags.MustBool(cmd.Flags().GetBool("fail-on-fallback")),
			}

			return runBuild(cmd, cfg, f)
		},
	}

	// Shared flags
	flags.Config(cmd)
	flags.Output(cmd)

	// Local flags specific to this command
	cmd.Flags().StringP("report", "r", "", "Path to the analyzer report (required)")
	cmd.Flags().StringP("label", "l", "", "Overrides the configured badge label")
	cmd.Flags().Bool("pending-when-missing", false, "Serve the pending badge while the report does not exist")
	cmd.Flags().Bool("fail-on-fallback", false, "Exit with an error when a fallback badge was served")
	_ = cmd.MarkFlagRequired("report")

	return cmd
}

// runBuild executes the build command logic.
func runBuild(cmd *cobra.Command, cfg Config, f buildFlags) error {
	ctx := cmd.Context()
	deps := cfg.deps()

	// --- Load

	appCfg, err := loadConfig(cfg, f.configPath)
	if err != nil {
		return err
	}

	props := appCfg.Badge.Properties()
	if f.label != "" {
		props.Label = f.label
	}
	if err = props.Validate(); err != nil {
		return fmt.Errorf("invalid badge properties: %w", err)
	}

	lggr, err := deps.LoggerFactory(appCfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = lggr.Sync() }()

	provider := &analyzer.ReportFile{Path: f.report, PendingWhenMissing: f.pendingWhenMissing}

	// --- Execute

	var (
		result   badge.Badge
		buildErr *badge.BuildError
	)
	err = withStore(ctx, cfg, appCfg.Statistics, func(store statistics.Store) error {
		builder := badge.NewBuilder(deps.ClientFactory(appCfg.Renderer, lggr), store, lggr)

		var berr error
		result, berr = builder.BuildBadge(ctx, props, provider, badge.WithErrorHandler(func(e *badge.BuildError) {
			buildErr = e
			cmd.PrintErrf("⚠️  Serving %s badge: %v\n", e.Kind, e.Err)
		}))

		return berr
	})
	if err != nil {
		return fmt.Errorf("failed to build badge for %s: %w", f.report, err)
	}

	// --- Write

	if f.out == "" {
		if _, err = cmd.OutOrStdout().Write(result.Data); err != nil {
			return fmt.Errorf("failed to write badge: %w", err)
		}
	} else {
		if err = os.WriteFile(f.out, result.Data, 0o644); err != nil { //nolint:gosec // badges are public artifacts
			return fmt.Errorf("failed to write badge to %s: %w", f.out, err)
		}
		cmd.Printf("✅ Wrote %s badge to %s\n", props.Label, f.out)
	}

	if f.failOnFallback && buildErr != nil {
		return fmt.Errorf("served %s fallback badge: %w", buildErr.Kind, buildErr)
	}

	return nil
}
