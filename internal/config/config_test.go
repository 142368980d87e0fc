package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/listpager/internal/config"
	"github.com/rshade/listpager/internal/dataset"
	"github.com/rshade/listpager/internal/logging"
)

func lookupFrom(env map[string]string) config.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 10, cfg.PagerConfig().PageSize)
	assert.Equal(t, dataset.KindEmployees, cfg.DatasetSource().Kind)
	assert.Equal(t, dataset.DefaultSampleCount, cfg.DatasetSource().Count)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantMsg string
	}{
		{name: "page size zero", mutate: func(c *config.Config) { c.Pagination.PageSize = 0 }, wantMsg: "pagination.page_size"},
		{name: "unknown kind", mutate: func(c *config.Config) { c.Dataset.Kind = "invoices" }, wantMsg: "dataset.kind"},
		{name: "negative count", mutate: func(c *config.Config) { c.Dataset.Count = -1 }, wantMsg: "dataset.count"},
		{name: "port too large", mutate: func(c *config.Config) { c.Server.Port = 70000 }, wantMsg: "server.port"},
		{name: "bad mode", mutate: func(c *config.Config) { c.Server.Mode = "turbo" }, wantMsg: "server.mode"},
		{name: "bad log format", mutate: func(c *config.Config) { c.Logging.Format = "xml" }, wantMsg: "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := config.Default()
	err := config.ApplyEnv(cfg, lookupFrom(map[string]string{
		config.EnvPageSize:     "25",
		config.EnvDataset:      "/data/items.json",
		config.EnvDatasetKind:  "items",
		config.EnvDatasetCount: "42",
		config.EnvHost:         "0.0.0.0",
		config.EnvPort:         "9090",
		config.EnvLogLevel:     "debug",
		config.EnvLogFormat:    "json",
	}))
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Pagination.PageSize)
	assert.Equal(t, config.DatasetConfig{Kind: "items", Count: 42, Path: "/data/items.json"}, cfg.Dataset)
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestApplyEnv_EmptyValuesIgnored(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, config.ApplyEnv(cfg, lookupFrom(map[string]string{config.EnvPageSize: ""})))
	assert.Equal(t, 10, cfg.Pagination.PageSize)
}

func TestApplyEnv_NotAnInteger(t *testing.T) {
	cfg := config.Default()
	err := config.ApplyEnv(cfg, lookupFrom(map[string]string{config.EnvPort: "eighty"}))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), config.EnvPort)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvHome, dir)
	t.Setenv(config.EnvPort, "9999")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
pagination:
  page_size: 20
server:
  host: localhost
  port: 8000
  mode: release
`), 0o600))

	cfg, err := config.Load(config.Options{DotEnv: filepath.Join(dir, "missing.env")})
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Pagination.PageSize)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 9999, cfg.Server.Port, "environment wins over the file")
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvHome, dir)
	// Registered with t.Setenv so the variable is restored after the test.
	t.Setenv(config.EnvPageSize, "")
	require.NoError(t, os.Unsetenv(config.EnvPageSize))

	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("LISTPAGER_PAGE_SIZE=3\n"), 0o600))

	cfg, err := config.Load(config.Options{DotEnv: envFile})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Pagination.PageSize)
}

func TestLoad_MissingDefaultFileIsFine(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())

	cfg, err := config.Load(config.Options{SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := config.Load(config.Options{Path: filepath.Join(t.TempDir(), "nope.yaml"), SkipEnv: true})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_InvalidFileFailsValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pagination:\n  page_size: 0\n"), 0o600))

	_, err := config.Load(config.Options{Path: path, SkipEnv: true})
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := config.Default()
	cfg.Pagination.PageSize = 15
	cfg.Dataset.Kind = "items"

	require.NoError(t, cfg.Save(path))

	loaded, err := config.Load(config.Options{Path: path, SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestGetConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvHome, dir)

	got, err := config.GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	path, err := config.DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), path)
}

func TestEnsureLogDir(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.EnsureLogDir())

	cfg.Logging.File = filepath.Join(t.TempDir(), "a", "b", "listpager.log")
	require.NoError(t, cfg.EnsureLogDir())
	assert.DirExists(t, filepath.Dir(cfg.Logging.File))
}

func TestToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "warn", Format: "json"}
	assert.Equal(t, logging.Config{Level: "warn", Format: "json", Output: logging.OutputStderr}, lc.ToLoggingConfig())

	lc.File = "/var/log/listpager.log"
	got := lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, got.Output)
	assert.Equal(t, "/var/log/listpager.log", got.File)

	debug := lc.WithDebug()
	assert.Equal(t, "debug", debug.Level)
	assert.Equal(t, logging.FormatConsole, debug.Format)
	assert.Empty(t, debug.File)
	assert.Equal(t, "warn", lc.Level, "WithDebug does not modify the receiver")
}

func TestLoad_FileKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o600))

	cfg, err := config.Load(config.Options{Path: path, SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, config.DefaultHost, cfg.Server.Host)
	assert.Equal(t, config.DefaultServerMode, cfg.Server.Mode)
}

func TestLoad_OverlayReplacesSections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
pagination:
  page_size: 20
dataset:
  kind: employees
  count: 55
`), 0o600))
	overlay := filepath.Join(dir, "project.yaml")
	require.NoError(t, os.WriteFile(overlay, []byte(`
dataset:
  kind: items
`), 0o600))

	cfg, err := config.Load(config.Options{Path: path, Overlay: overlay, SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Pagination.PageSize, "sections absent from the overlay are kept")
	assert.Equal(t, "items", cfg.Dataset.Kind)
	assert.Zero(t, cfg.Dataset.Count, "the overlay replaces the whole dataset section")
}

func TestLoad_DefaultOverlayInWorkingDir(t *testing.T) {
	t.Setenv(config.EnvHome, t.TempDir())
	wd := t.TempDir()
	t.Chdir(wd)
	require.NoError(t, os.WriteFile(filepath.Join(wd, config.DefaultOverlayFile),
		[]byte("pagination:\n  page_size: 4\n"), 0o600))

	cfg, err := config.Load(config.Options{SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Pagination.PageSize)
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pagination: [oops"), 0o600))

	_, err := config.Load(config.Options{Path: path, SkipEnv: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}
