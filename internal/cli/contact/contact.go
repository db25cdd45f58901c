// Package contact holds the contact subcommands of the phonebook CLI.
package contact

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
)

// Commands returns every contact subcommand, ready to attach to the root command
func Commands() []*cobra.Command {
	return []*cobra.Command{
		ListCmd(),
		AddCmd(),
		RemoveCmd(),
		DefaultsCmd(),
	}
}

// addOutputFlags registers the agent-friendly flags every command carries
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

func closeCLI(c *cli.CLI) {
	if err := c.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
}
