package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyPagination = "pagination"
	keyDataset    = "dataset"
	keyServer     = "server"
	keyLogging    = "logging"
)

// knownTopLevelKeys lists the YAML keys that correspond to exported Config fields.
// Keys not in this list are silently ignored during merge.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keyPagination: true,
	keyDataset:    true,
	keyServer:     true,
	keyLogging:    true,
}

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// the target Config. Keys present in the overlay replace entire sections
// in the target. Keys absent in the overlay are left unchanged.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	return ShallowMergeYAMLBytes(target, data, overlayPath)
}

// ShallowMergeYAMLBytes is ShallowMergeYAML over an in-memory document.
// source only labels errors.
func ShallowMergeYAMLBytes(target *Config, data []byte, source string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAMLBytes")
	}

	var overlay map[string]yaml.Node
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", source, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	for key, node := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}
		if err := unmarshalSection(target, key, &node); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}

	return nil
}

// unmarshalSection decodes node into the field of target named by key. Each
// section is decoded into a fresh zero value so the overlay replaces the
// section entirely.
func unmarshalSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyPagination:
		var v PaginationConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Pagination = v
		return nil
	case keyDataset:
		var v DatasetConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Dataset = v
		return nil
	case keyServer:
		var v ServerConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Server = v
		return nil
	case keyLogging:
		var v LoggingConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
		return nil
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}
