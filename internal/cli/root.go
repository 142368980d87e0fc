package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/listpager/internal/config"
	"github.com/rshade/listpager/internal/logging"
)

// skipConfigAnnotation marks commands that must run even when the config
// file is missing or invalid. They fall back to built-in defaults.
const skipConfigAnnotation = "listpager/skip-config"

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// session is the per-invocation state shared by every subcommand. It is
// filled in by the root PersistentPreRunE.
type session struct {
	configPath string
	cfg        *config.Config
	logResult  *logging.Result
}

// NewRootCmd creates the root Cobra command for the listpager CLI.
// It wires up configuration, logging, tracing, and the subcommands
// (list, serve, browse, config, setup).
func NewRootCmd(ver string) *cobra.Command {
	s := &session{}

	cmd := &cobra.Command{
		Use:           "listpager",
		Short:         "Paginated list viewer",
		Long:          "listpager: browse a dataset one page at a time in the terminal, a TUI, or a browser",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := s.loadConfig(cmd); err != nil {
				return err
			}
			setupLogging(cmd, s)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, s)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&s.configPath, "config", "",
		"config file (default $LISTPAGER_HOME/config.yaml or ~/.listpager/config.yaml)")
	cmd.AddCommand(
		newListCmd(s),
		newServeCmd(s),
		newBrowseCmd(s),
		newConfigCmd(s),
		NewSetupCmd(s),
	)

	return cmd
}

const rootCmdExample = `  # Print page 3 of the sample employee list
  listpager list --page 3

  # Page through a dataset file, 25 rows at a time, as JSON
  listpager list --dataset staff.yaml --page-size 25 --output json

  # Browse interactively
  listpager browse

  # Serve the list to a browser on port 9000
  listpager serve --port 9000

  # Create ~/.listpager and check the environment
  listpager setup`

// loadConfig resolves the configuration for this invocation.
func (s *session) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(config.Options{Path: s.configPath})
	if err != nil {
		if !skipsConfig(cmd) {
			return err
		}
		cfg = config.Default()
	}
	s.cfg = cfg
	return nil
}

// logger is the root logger for this invocation, without the cli component
// tag. It is a no-op logger before logging is set up.
func (s *session) logger() zerolog.Logger {
	if s.logResult == nil {
		return zerolog.Nop()
	}
	return s.logResult.Logger
}

// skipsConfig reports whether cmd or one of its parents tolerates a broken
// configuration.
func skipsConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[skipConfigAnnotation]; ok {
			return true
		}
	}
	return false
}

func newConfigCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(s), NewConfigShowCmd(s), NewConfigValidateCmd(s),
	)
	return cmd
}
