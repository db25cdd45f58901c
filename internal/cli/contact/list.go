package contact

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
	contactservice "github.com/thenoetrevino/phonebook/internal/services/contact"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts",
		Long: `List contacts, optionally filtered by a case-insensitive name substring.

Examples:
  phonebook list
  phonebook list --filter ro
  phonebook list --json
`,
		Args: cli.UsageArgs(cobra.NoArgs),
		RunE: runList,
	}

	cmd.Flags().String("filter", "", "Only show contacts whose name contains this text")
	addOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	c, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(c)

	store := c.App.Contacts
	if err := store.SnapshotErr(); errors.Is(err, contactservice.ErrMalformedSnapshot) {
		return cli.Report(formatter, cli.ExitDataErr, "MALFORMED_DATA", err,
			"Run 'phonebook defaults' to start over from the default contacts")
	}

	filter, _ := cmd.Flags().GetString("filter")
	store.SetFilter(filter)
	contacts := store.FilteredContacts()

	formatter.Notifications(c.Notes.All())
	return formatter.Success(contacts)
}
