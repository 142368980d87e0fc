package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override file configuration.
const (
	EnvHome         = "LISTPAGER_HOME"
	EnvPageSize     = "LISTPAGER_PAGE_SIZE"
	EnvDataset      = "LISTPAGER_DATASET"
	EnvDatasetKind  = "LISTPAGER_DATASET_KIND"
	EnvDatasetCount = "LISTPAGER_DATASET_COUNT"
	EnvHost         = "LISTPAGER_HOST"
	EnvPort         = "LISTPAGER_PORT"
	EnvLogLevel     = "LISTPAGER_LOG_LEVEL"
	EnvLogFormat    = "LISTPAGER_LOG_FORMAT"

	defaultDotEnv = ".env"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadDotEnv reads KEY=value pairs from path (".env" when empty) into the
// process environment. Variables that are already set win, and a missing
// file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = defaultDotEnv
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays LISTPAGER_* variables onto cfg. Empty values are ignored.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	if cfg == nil {
		return errors.New("nil *Config in ApplyEnv")
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}

	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		return v, ok && v != ""
	}

	if v, ok := get(EnvPageSize); ok {
		n, err := atoi(EnvPageSize, v)
		if err != nil {
			return err
		}
		cfg.Pagination.PageSize = n
	}
	if v, ok := get(EnvDataset); ok {
		cfg.Dataset.Path = v
	}
	if v, ok := get(EnvDatasetKind); ok {
		cfg.Dataset.Kind = v
	}
	if v, ok := get(EnvDatasetCount); ok {
		n, err := atoi(EnvDatasetCount, v)
		if err != nil {
			return err
		}
		cfg.Dataset.Count = n
	}
	if v, ok := get(EnvHost); ok {
		cfg.Server.Host = v
	}
	if v, ok := get(EnvPort); ok {
		n, err := atoi(EnvPort, v)
		if err != nil {
			return err
		}
		cfg.Server.Port = n
	}
	if v, ok := get(EnvLogLevel); ok {
		cfg.Logging.Level = v
	}
	if v, ok := get(EnvLogFormat); ok {
		cfg.Logging.Format = v
	}
	return nil
}

func atoi(key, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, v)
	}
	return n, nil
}
