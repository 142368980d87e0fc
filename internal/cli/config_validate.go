package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/listpager/internal/config"
	"github.com/rshade/listpager/internal/dataset"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd(s *session) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file, .env file and LISTPAGER_* environment
overrides for syntax and semantic correctness.

This includes:
- YAML syntax of the config file
- page size, dataset kind and count
- server port and mode
- log format
- the dataset file, when dataset.path is set`,
		Example: `  # Validate current configuration
  listpager config validate

  # Validate and show detailed information
  listpager config validate --verbose`,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, s.configPath, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, path string, verbose bool) error {
	cfg, err := config.Load(config.Options{Path: path})
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	set, err := dataset.Open(cfg.DatasetSource())
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg, set)
	}

	return nil
}

// printVerboseDetails prints the resolved settings.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config, set dataset.Set) {
	cmd.Println()
	cmd.Printf("Page size: %d\n", cfg.Pagination.PageSize)
	if cfg.Dataset.Path != "" {
		cmd.Printf("Dataset:   %s (%d %s)\n", cfg.Dataset.Path, set.Len(), set.Kind)
	} else {
		cmd.Printf("Dataset:   %d generated %s\n", set.Len(), set.Kind)
	}
	cmd.Printf("Server:    %s (%s mode)\n", cfg.Addr(), cfg.Server.Mode)
	cmd.Printf("Logging:   %s/%s\n", cfg.Logging.Level, cfg.Logging.Format)
	if cfg.Logging.File != "" {
		cmd.Printf("Log file:  %s\n", cfg.Logging.File)
	}
}
