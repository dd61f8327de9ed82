package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order-desk/internal/menu"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "order-desk", cmd.Use)
	assert.Contains(t, cmd.Long, "kitchen")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"serve", "migrate", "menu", "notify"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
	assert.Equal(t, "", configFlag.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("log-level"))
}

func TestServeCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	serveCmd, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)

	assert.NotNil(t, serveCmd.Flags().Lookup("addr"))
	assert.NotNil(t, serveCmd.Flags().Lookup("storage"))
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "menu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestMenuText(t *testing.T) {
	out, err := execute(t, "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Sabzi\n")
	assert.Contains(t, out, "Aloo Palak")
	assert.Contains(t, out, "519")
}

func TestMenuJSON(t *testing.T) {
	out, err := execute(t, "menu", "--format", "json")
	require.NoError(t, err)

	var cats []menu.Category
	require.NoError(t, json.Unmarshal([]byte(out), &cats))
	assert.Len(t, cats, 6)
}

func TestMenuInvalidFormat(t *testing.T) {
	_, err := execute(t, "menu", "--format", "xml")
	assert.Error(t, err)
}

func TestMigrateSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.db")

	for i := 0; i < 2; i++ {
		out, err := execute(t, "migrate", "--database-url", "sqlite:///"+path)
		require.NoError(t, err)
		assert.Contains(t, out, "schema up to date (sqlite3)")
	}
}
