// Package flags provides the flags shared by the badges subcommands.
//
// Command specific flags are defined next to the command that uses them.
package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DefaultConfigPath is the config file read when --config is not given.
const DefaultConfigPath = "badges.yaml"

// MustString returns the string value, ignoring the error.
// Safe to use with registered flags where GetString cannot fail.
func MustString(s string, _ error) string { return s }

// MustBool returns the bool value, ignoring the error.
// Safe to use with registered flags where GetBool cannot fail.
func MustBool(b bool, _ error) bool { return b }

// Config adds the --config/-c flag. A missing file falls back to environment variables.
// Retrieve the value with cmd.Flags().GetString("config").
func Config(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", DefaultConfigPath, "Path to the badges config file")
}

// Output adds the --out/-o flag. An empty value writes to stdout.
// The --output spelling is accepted as an alias.
// Retrieve the value with cmd.Flags().GetString("out").
func Output(cmd *cobra.Command) {
	cmd.Flags().StringP("out", "o", "", "Output file path (default stdout)")

	existingNormalize := cmd.Flags().GetNormalizeFunc()
	cmd.Flags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "output" {
			return pflag.NormalizedName("out")
		}
		if existingNormalize != nil {
			return existingNormalize(f, name)
		}

		return pflag.NormalizedName(name)
	})
}
