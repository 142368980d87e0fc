package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/listpager/internal/cli"
	"github.com/rshade/listpager/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		require.NotNil(t, root)
		assert.NotEmpty(t, root.Use)
	})
}

func TestRun_ReportsErrors(t *testing.T) {
	t.Setenv("LISTPAGER_HOME", t.TempDir())
	t.Setenv("LISTPAGER_LOG_LEVEL", "error")
	t.Chdir(t.TempDir())

	var stderr bytes.Buffer
	err := run(context.Background(), []string{"list", "--output", "xml"}, &stderr)
	require.ErrorIs(t, err, cli.ErrUnsupportedOutput)
	assert.Contains(t, stderr.String(), "Error: unsupported output format")
}

func TestRun_UnknownCommand(t *testing.T) {
	var stderr bytes.Buffer
	err := run(context.Background(), []string{"frobnicate"}, &stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "unknown command")
}
