package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUsageTestCmd(args cobra.PositionalArgs, required ...string) (*cobra.Command, *bytes.Buffer) {
	var errOut bytes.Buffer
	cmd := &cobra.Command{
		Use:           "usage-test",
		Args:          UsageArgs(args),
		PreRunE:       RequireFlags(required...),
		RunE:          func(cmd *cobra.Command, args []string) error { return nil },
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().String("name", "", "")
	cmd.SetErr(&errOut)
	cmd.SetOut(&errOut)
	return cmd, &errOut
}

func TestUsageArgs(t *testing.T) {
	cmd, errOut := newUsageTestCmd(cobra.ExactArgs(1))
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.Contains(t, errOut.String(), "accepts 1 arg(s)")
}

func TestRequireFlags(t *testing.T) {
	cmd, _ := newUsageTestCmd(cobra.NoArgs, "name")
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))

	cmd, _ = newUsageTestCmd(cobra.NoArgs, "name")
	cmd.SetArgs([]string{"--name", "Rosie"})
	assert.NoError(t, cmd.Execute())
}
