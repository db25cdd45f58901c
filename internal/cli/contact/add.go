package contact

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
	contactservice "github.com/thenoetrevino/phonebook/internal/services/contact"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a contact",
		Long: `Add a contact. Names are unique ignoring case.

Examples:
  phonebook add --name="Rosie Simpson" --number=459-12-56

  # Quiet mode for bash capture
  ID=$(phonebook add --name="Eden Clements" --number=645-17-79 --quiet)
`,
		Args:    cli.UsageArgs(cobra.NoArgs),
		PreRunE: cli.RequireFlags("name"),
		RunE:    runAdd,
	}

	cmd.Flags().String("name", "", "Contact name (required)")
	cmd.Flags().String("number", "", "Phone number")
	addOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	c, formatter, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	defer closeCLI(c)

	name, _ := cmd.Flags().GetString("name")
	number, _ := cmd.Flags().GetString("number")

	added, err := c.App.Contacts.Add(cmd.Context(), name, number)
	formatter.Notifications(c.Notes.All())

	switch {
	case errors.Is(err, contactservice.ErrEmptyName):
		return cli.Report(formatter, cli.ExitValidation, "EMPTY_NAME", err, "Pass a non-blank --name")
	case errors.Is(err, contactservice.ErrDuplicateName):
		return cli.Report(formatter, cli.ExitValidation, "DUPLICATE_NAME",
			fmt.Errorf("%s is already in contacts", name),
			"Use 'phonebook list' to see existing contacts")
	case err != nil:
		return cli.Report(formatter, cli.ExitError, "PERSIST_ERROR", err, "")
	}

	return formatter.Success(added)
}
