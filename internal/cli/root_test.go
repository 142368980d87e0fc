package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"

	"github.com/rshade/listpager/internal/cli"
	"github.com/rshade/listpager/internal/config"
)

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := cli.NewRootCmd("1.2.3")
	assert.Equal(t, "listpager", cmd.Use)

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"list", "serve", "browse", "config", "setup"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

func TestRootCmd_Version(t *testing.T) {
	setupCLITest(t)

	out, errOut, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "listpager version test")
	assert.Empty(t, errOut)
}

func TestRootCmd_DebugLogging(t *testing.T) {
	setupCLITest(t)

	_, errOut, err := execute(t, "--debug", "list")
	require.NoError(t, err)
	assert.Contains(t, errOut, "command started")
	assert.Contains(t, errOut, "rendered page")
}

func TestRootCmd_QuietByDefault(t *testing.T) {
	setupCLITest(t)

	_, errOut, err := execute(t, "list")
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestRootCmd_LogFile(t *testing.T) {
	setupCLITest(t)
	logPath := filepath.Join(t.TempDir(), "logs", "listpager.log")
	cfgPath := filepath.Join(t.TempDir(), "listpager.yaml")
	require.NoError(t, os.WriteFile(cfgPath,
		[]byte("logging:\n  level: debug\n  format: json\n  file: "+logPath+"\n"), 0o600))
	t.Setenv(config.EnvLogLevel, "")

	_, errOut, err := execute(t, "--config", cfgPath, "list")
	require.NoError(t, err)
	assert.Contains(t, errOut, logPath)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"command started"`)
	assert.Contains(t, string(data), `"trace_id"`)
}

func TestRootCmd_MissingExplicitConfig(t *testing.T) {
	setupCLITest(t)

	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "list")
	require.Error(t, err)
}

func TestRootCmd_InvalidConfigFile(t *testing.T) {
	home := setupCLITest(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("pagination:\n  page_size: 0\n"), 0o600))

	_, _, err := execute(t, "list")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestServe_InvalidPort(t *testing.T) {
	setupCLITest(t)

	_, _, err := execute(t, "serve", "--port", "70000")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestBrowse_NeedsTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is a terminal")
	}
	setupCLITest(t)

	_, _, err := execute(t, "browse")
	require.ErrorIs(t, err, cli.ErrNotTerminal)
}

func TestConfigInit(t *testing.T) {
	home := setupCLITest(t)

	out, _, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized at")

	path := filepath.Join(home, "config.yaml")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "page_size: 10")

	_, _, err = execute(t, "config", "init")
	require.Error(t, err, "existing file is not overwritten without --force")
	assert.Contains(t, err.Error(), "--force")

	_, _, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigInit_ExplicitPathAndBrokenConfig(t *testing.T) {
	home := setupCLITest(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("server:\n  mode: sideways\n"), 0o600))

	path := filepath.Join(t.TempDir(), "nested", "listpager.yaml")
	out, _, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestConfigShow(t *testing.T) {
	setupCLITest(t)
	t.Setenv(config.EnvPageSize, "25")

	out, _, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "page_size: 25")

	out, _, err = execute(t, "config", "show", "--output", "json")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, 25, cfg.Pagination.PageSize)
	assert.Equal(t, config.DefaultPort, cfg.Server.Port)

	_, _, err = execute(t, "config", "show", "--output", "toml")
	require.ErrorIs(t, err, cli.ErrUnsupportedOutput)
}

func TestConfigValidate(t *testing.T) {
	home := setupCLITest(t)

	out, _, err := execute(t, "config", "validate", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Page size: 10")
	assert.Contains(t, out, "200 generated employees")

	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("server:\n  port: 99999\n"), 0o600))
	_, _, err = execute(t, "config", "validate")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestConfigValidate_BadDatasetFile(t *testing.T) {
	home := setupCLITest(t)
	dataPath := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(dataPath, []byte("schema_version: 2.0.0\nitems: [a]\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("dataset:\n  path: "+dataPath+"\n"), 0o600))

	_, _, err := execute(t, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}
