package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// UsageError reports err with the command usage and marks it ExitUsage
func UsageError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n%s", err, cmd.UsageString())
	return Exit(ExitUsage, err)
}

// UsageArgs wraps a positional argument validator so violations exit with ExitUsage
func UsageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return UsageError(cmd, err)
		}
		return nil
	}
}

// RequireFlags returns a PreRunE that fails with ExitUsage unless every named flag was set.
// It replaces cobra's MarkFlagRequired, whose error carries no exit code.
func RequireFlags(names ...string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		var missing []string
		for _, name := range names {
			if !cmd.Flags().Changed(name) {
				missing = append(missing, fmt.Sprintf("%q", name))
			}
		}
		if len(missing) > 0 {
			return UsageError(cmd, fmt.Errorf("required flag(s) %s not set", strings.Join(missing, ", ")))
		}
		return nil
	}
}
