package setup

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/config"
)

func runSetupCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := SetupCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSetup_WritesDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("PHONEBOOK_DB", "")
	t.Setenv("PHONEBOOK_THEME_FILE", "")

	out, _, err := runSetupCmd(t)
	require.NoError(t, err)

	path := filepath.Join(dir, "phonebook", "config.yaml")
	assert.Contains(t, out, path)

	loaded, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), loaded)
}

func TestSetup_KeepsExistingFileWithoutForce(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "phonebook", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("key_mappings:\n  quit: x\n"), 0o644))

	_, errOut, err := runSetupCmd(t)
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Contains(t, errOut, "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "key_mappings:\n  quit: x\n", string(data))
}

func TestSetup_ForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("PHONEBOOK_DB", "")
	t.Setenv("PHONEBOOK_THEME_FILE", "")
	path := filepath.Join(dir, "phonebook", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("key_mappings:\n  quit: x\n"), 0o644))

	_, _, err := runSetupCmd(t, "--force")
	require.NoError(t, err)

	loaded, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "q", loaded.KeyMappings.Quit)
}
