package contact

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
	contactservice "github.com/thenoetrevino/phonebook/internal/services/contact"
)

// RemoveCmd returns the remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <id|name>",
		Short: "Remove a contact",
		Long: `Remove a contact by id, or by name ignoring case.

Examples:
  phonebook remove seed-3
  phonebook remove "hermione kline"
`,
		Args: cli.UsageArgs(cobra.ExactArgs(1)),
		RunE: runRemove,
	}

	addOutputFlags(cmd)

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	c, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(c)

	target, ok := cli.ResolveContact(c.App.Contacts, args[0])
	if !ok {
		return cli.Report(formatter, cli.ExitNotFound, "CONTACT_NOT_FOUND",
			fmt.Errorf("%w: %s", contactservice.ErrContactNotFound, args[0]),
			"Use 'phonebook list' to see available contacts")
	}

	removed, _, err := c.App.Contacts.Remove(cmd.Context(), target.ID)
	formatter.Notifications(c.Notes.All())
	if err != nil {
		return cli.Report(formatter, cli.ExitError, "PERSIST_ERROR", err, "")
	}

	return formatter.Success(removed)
}
