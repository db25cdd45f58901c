// Package cmd wires the phonebook command tree.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/cli/contact"
	"github.com/thenoetrevino/phonebook/internal/cli/setup"
	"github.com/thenoetrevino/phonebook/internal/launcher"
	"github.com/thenoetrevino/phonebook/internal/logging"
)

// NewRootCmd builds the root command with every subcommand attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "phonebook",
		Short: "Phonebook - a terminal contact list",
		Long: `Phonebook keeps a list of contacts (name and phone number) in a local database.

Run without a subcommand to open the interactive view.`,
		Args:              cli.UsageArgs(cobra.NoArgs),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initLogging,
		RunE:              runTUI,
	}

	rootCmd.PersistentFlags().String("db", "", "Database file (default ~/.phonebook/phonebook.db)")
	rootCmd.PersistentFlags().Bool("ephemeral", false, "Keep contacts in memory only")

	rootCmd.SetFlagErrorFunc(cli.UsageError)

	rootCmd.AddCommand(contact.Commands()...)
	rootCmd.AddCommand(setup.SetupCmd())
	return rootCmd
}

// Execute runs the command tree
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func initLogging(cmd *cobra.Command, args []string) error {
	if err := logging.Init(); err != nil {
		logging.Discard()
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	ephemeral, _ := cmd.Flags().GetBool("ephemeral")

	return launcher.Launch(cmd.Context(), launcher.Options{
		DBPath:    dbPath,
		Ephemeral: ephemeral,
	})
}
