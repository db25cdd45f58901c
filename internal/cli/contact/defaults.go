package contact

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
)

// DefaultsCmd returns the defaults subcommand
func DefaultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Replace the contact list with the default contacts",
		Long: `Replace the contact list with the six default contacts.

Without --force this only runs when the list is empty, matching the
"Default Contacts" button of the interactive view.
`,
		Args: cli.UsageArgs(cobra.NoArgs),
		RunE: runDefaults,
	}

	cmd.Flags().Bool("force", false, "Replace a non-empty list")
	addOutputFlags(cmd)

	return cmd
}

func runDefaults(cmd *cobra.Command, args []string) error {
	c, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(c)

	store := c.App.Contacts
	force, _ := cmd.Flags().GetBool("force")
	if !force && store.Len() > 0 {
		return cli.Report(formatter, cli.ExitValidation, "NOT_EMPTY",
			errNotEmpty, "Pass --force to replace the existing contacts")
	}

	if err := store.LoadDefaults(cmd.Context()); err != nil {
		return cli.Report(formatter, cli.ExitError, "PERSIST_ERROR", err, "")
	}

	formatter.Notifications(c.Notes.All())
	return formatter.Success(store.Contacts())
}

var errNotEmpty = errors.New("contact list is not empty")
