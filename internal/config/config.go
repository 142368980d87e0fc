// Package config loads listpager's configuration: built-in defaults, the
// YAML config file, a project-local overlay, an optional .env file, and
// LISTPAGER_* environment overrides, applied in that order.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/listpager/internal/dataset"
	"github.com/rshade/listpager/internal/logging"
	"github.com/rshade/listpager/internal/pager"
	"github.com/rshade/listpager/internal/pagination"
)

// Defaults.
const (
	DefaultHost       = "127.0.0.1"
	DefaultPort       = 8080
	DefaultServerMode = "release"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = logging.FormatConsole

	maxPort    = 65535
	configPerm = 0o600
)

// Server modes accepted in server.mode; they map onto gin's modes.
const (
	ModeDebug   = "debug"
	ModeRelease = "release"
	ModeTest    = "test"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full application configuration. It is built once per
// invocation and passed down explicitly.
type Config struct {
	Pagination PaginationConfig `yaml:"pagination" json:"pagination"`
	Dataset    DatasetConfig    `yaml:"dataset"    json:"dataset"`
	Server     ServerConfig     `yaml:"server"     json:"server"`
	Logging    LoggingConfig    `yaml:"logging"    json:"logging"`
}

// PaginationConfig controls page sizing.
type PaginationConfig struct {
	PageSize int `yaml:"page_size" json:"page_size"`
}

// DatasetConfig selects the rows being paginated. A non-empty Path wins over
// the sample generator.
type DatasetConfig struct {
	Kind  string `yaml:"kind"           json:"kind"`
	Count int    `yaml:"count"          json:"count"`
	Path  string `yaml:"path,omitempty" json:"path,omitempty"`
}

// ServerConfig controls the HTTP browser sink.
type ServerConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
	Mode string `yaml:"mode" json:"mode"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"          json:"level"`
	Format string `yaml:"format"         json:"format"`
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Pagination: PaginationConfig{PageSize: pagination.DefaultPageSize},
		Dataset: DatasetConfig{
			Kind:  string(dataset.KindEmployees),
			Count: dataset.DefaultSampleCount,
		},
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
			Mode: DefaultServerMode,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Options steer Load.
type Options struct {
	// Path is an explicit config file. Empty means the default location,
	// which may be absent.
	Path string
	// DotEnv is the .env file to read before environment overrides. Empty
	// means ".env" in the working directory; a missing file is ignored.
	DotEnv string
	// Overlay is a project-local file shallow-merged over the config file.
	// Empty means ".listpager.yaml" in the working directory; a missing
	// file is ignored.
	Overlay string
	// SkipEnv disables .env loading and environment overrides.
	SkipEnv bool
}

// DefaultOverlayFile is the project-local overlay looked up in the working
// directory.
const DefaultOverlayFile = ".listpager.yaml"

// Load builds the configuration from defaults, the config file, the
// project overlay, and the environment. Fields missing from the config file
// keep their defaults; sections present in the overlay replace the whole
// section. An explicitly named config file must exist.
func Load(opts Options) (*Config, error) {
	cfg := Default()

	path := opts.Path
	explicit := path != ""
	if !explicit {
		p, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case explicit || !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	overlay := opts.Overlay
	if overlay == "" {
		overlay = DefaultOverlayFile
	}
	if _, statErr := os.Stat(overlay); statErr == nil {
		if err = ShallowMergeYAML(cfg, overlay); err != nil {
			return nil, err
		}
	}

	if !opts.SkipEnv {
		if err := LoadDotEnv(opts.DotEnv); err != nil {
			return nil, err
		}
		if err := ApplyEnv(cfg, os.LookupEnv); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if err := c.PagerConfig().Validate(); err != nil {
		return fmt.Errorf("%w: pagination.page_size: %w", ErrInvalidConfig, err)
	}
	if _, err := dataset.ParseKind(c.Dataset.Kind); err != nil {
		return fmt.Errorf("%w: dataset.kind: %w", ErrInvalidConfig, err)
	}
	if c.Dataset.Count < 0 {
		return fmt.Errorf("%w: dataset.count must be >= 0, got %d", ErrInvalidConfig, c.Dataset.Count)
	}
	if c.Server.Port < 0 || c.Server.Port > maxPort {
		return fmt.Errorf("%w: server.port %d out of range", ErrInvalidConfig, c.Server.Port)
	}
	switch c.Server.Mode {
	case ModeDebug, ModeRelease, ModeTest:
	default:
		return fmt.Errorf("%w: server.mode %q (want %s, %s or %s)",
			ErrInvalidConfig, c.Server.Mode, ModeDebug, ModeRelease, ModeTest)
	}
	switch strings.ToLower(c.Logging.Format) {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: logging.format %q (want %s or %s)",
			ErrInvalidConfig, c.Logging.Format, logging.FormatConsole, logging.FormatJSON)
	}
	return nil
}

// PagerConfig projects the pagination section onto the pager.
func (c *Config) PagerConfig() pager.Config {
	return pager.Config{PageSize: c.Pagination.PageSize}
}

// DatasetSource projects the dataset section onto a dataset.Source.
func (c *Config) DatasetSource() dataset.Source {
	return dataset.Source{
		Kind:  dataset.Kind(c.Dataset.Kind),
		Count: c.Dataset.Count,
		Path:  c.Dataset.Path,
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err = ensureParentDir(path); err != nil {
		return err
	}
	if err = os.WriteFile(path, data, configPerm); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
