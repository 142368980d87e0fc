package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/listpager/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
// It writes the built-in defaults to --config, or to the global
// $LISTPAGER_HOME/config.yaml when no path is given.
func NewConfigInitCmd(s *session) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

The file is written to the path given with --config, or to
$LISTPAGER_HOME/config.yaml (default ~/.listpager/config.yaml).`,
		Example: `  # Create the global configuration
  listpager config init

  # Create configuration, overwriting existing
  listpager config init --force

  # Create a configuration file somewhere else
  listpager config init --config ./listpager.yaml`,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := s.configPath
			if path == "" {
				p, err := config.DefaultConfigPath()
				if err != nil {
					return err
				}
				path = p
			}
			return initConfig(cmd, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

// initConfig writes the default configuration to path.
func initConfig(cmd *cobra.Command, path string, force bool) error {
	// Check if config already exists and force isn't set
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			answer := ConfirmOverwrite(cmd.OutOrStdout(), cmd.InOrStdin(), path, isTerminal(os.Stdin))
			if !answer.Accepted {
				return errors.New("configuration file already exists, use --force to overwrite")
			}
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	if err := config.Default().Save(path); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", path)
	return nil
}
