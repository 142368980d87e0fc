package cli

import (
	"bytes"
	"context"
	"net"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/listpager/internal/config"
)

func TestRunServe_StopsOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Port = 0
	cfg.Server.Mode = config.ModeTest
	cfg.Dataset.Count = 42

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	require.NoError(t, runServe(ctx, cmd, cfg, zerolog.Nop(), nil))
	assert.Contains(t, out.String(), "Serving 42 employees on http://127.0.0.1:0")
}

func TestRunServe_StopsOnSignal(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Port = 0
	cfg.Server.Mode = config.ModeTest

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	sigCh := make(chan os.Signal, 1)
	sigCh <- syscall.SIGTERM

	done := make(chan error, 1)
	go func() { done <- runServe(context.Background(), cmd, cfg, zerolog.Nop(), sigCh) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after SIGTERM")
	}
}

func TestRunServe_AddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := config.Default()
	cfg.Server.Port = ln.Addr().(*net.TCPAddr).Port
	cfg.Server.Mode = config.ModeTest

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	err = runServe(context.Background(), cmd, cfg, zerolog.Nop(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "serving on")
}

func TestRunServe_BadDataset(t *testing.T) {
	cfg := config.Default()
	cfg.Dataset.Path = "does-not-exist.json"

	err := runServe(context.Background(), &cobra.Command{}, cfg, zerolog.Nop(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening dataset")
}
