package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rshade/listpager/internal/cli"
	"github.com/rshade/listpager/internal/config"
)

// setupCLITest isolates a test from the user's config directory, .env file
// and LISTPAGER_* environment.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	for _, key := range []string{
		config.EnvPageSize, config.EnvDataset, config.EnvDatasetKind, config.EnvDatasetCount,
		config.EnvHost, config.EnvPort, config.EnvLogFormat,
	} {
		t.Setenv(key, "")
	}
	t.Setenv(config.EnvLogLevel, "error")
	t.Chdir(t.TempDir())
	return home
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
