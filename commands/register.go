package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/analyzer-badges/commands/flags"
	"github.com/smartcontractkit/analyzer-badges/commands/text"
	"github.com/smartcontractkit/analyzer-badges/statistics"
)

var (
	registerShort = "Register a badge for a project"

	registerLong = text.LongDesc(`
		Registers a new badge for a project and prints its identifier. The project is created on
		first registration; later registrations add further badges to it.
	`)

	registerExample = text.Examples(`
		# Register a badge for the analyzer-badges project of the smartcontractkit account
		badges register --account smartcontractkit --project analyzer-badges
	`)
)

type registerFlags struct {
	configPath string
	account    string
	project    string
}

// newRegisterCmd creates the "register" subcommand.
func newRegisterCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "register",
		Short:   registerShort,
		Long:    registerLong,
		Example: registerExample,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := registerFlags{
				configPath: flags.MustString(cmd.Flags().GetString("config")),
				account:    flags.MustString(cmd.Flags().GetString("account")),
				project:    flags.MustString(cmd.Flags().GetString("project")),
			}

			return runRegister(cmd, cfg, f)
		},
	}

	flags.Config(cmd)

	cmd.Flags().StringP("account", "a", "", "Account owning the project (required)")
	cmd.Flags().StringP("project", "p", "", "Project name (required)")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

// runRegister executes the register command logic.
func runRegister(cmd *cobra.Command, cfg Config, f registerFlags) error {
	ctx := cmd.Context()

	appCfg, err := loadConfig(cfg, f.configPath)
	if err != nil {
		return err
	}

	var reg statistics.Registration
	err = withStore(ctx, cfg, appCfg.Statistics, func(store statistics.Store) error {
		reg, err = store.RegisterBadge(ctx, f.account, f.project)

		return err
	})
	if err != nil {
		return fmt.Errorf("failed to register badge for %s/%s: %w", f.account, f.project, err)
	}

	cmd.Printf("✅ Registered badge %s for %s/%s\n", reg.BadgeIdentifier, reg.AccountName, reg.ProjectName)

	return nil
}
