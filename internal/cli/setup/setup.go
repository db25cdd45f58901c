// Package setup writes a starter configuration file.
package setup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/config"
)

// SetupCmd returns the setup command
func SetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Write a config file with the default settings",
		Long: `Write the default key bindings, theme and storage settings to
$XDG_CONFIG_HOME/phonebook/config.yaml (or ~/.config/phonebook/config.yaml)
so they can be edited.

An existing file is left alone unless --force is given.`,
		Args: cli.UsageArgs(cobra.NoArgs),
		RunE: runSetup,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")

	return cmd
}

func runSetup(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	force, _ := cmd.Flags().GetBool("force")
	if !force {
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "❌ Error: %s already exists\n", path)
			fmt.Fprintln(cmd.ErrOrStderr(), "💡 Suggestion: Pass --force to overwrite it")
			return cli.Exit(cli.ExitValidation, errConfigExists)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to check config file: %w", err)
		}
	}

	if err := config.Default().Save(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote default config\n  Config: %s\n", path)
	return nil
}

var errConfigExists = errors.New("config file already exists")
