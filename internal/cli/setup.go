package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/rshade/listpager/internal/config"
	"github.com/rshade/listpager/internal/dataset"
	"github.com/rshade/listpager/internal/logging"
	"github.com/rshade/listpager/internal/pagination"
	"github.com/rshade/listpager/pkg/version"
)

// StepStatus represents the outcome of a single setup step.
type StepStatus int

const (
	// StepSuccess indicates the step completed successfully.
	StepSuccess StepStatus = iota
	// StepWarning indicates the step completed with a non-fatal issue.
	StepWarning
	// StepSkipped indicates the step was intentionally skipped via flag.
	StepSkipped
	// StepError indicates the step failed.
	StepError
)

// StepResult describes the outcome of executing a single setup step.
type StepResult struct {
	Name     string
	Status   StepStatus
	Message  string
	Critical bool
	Err      error
}

// SetupOptions holds the configuration for the setup command, derived from CLI flags.
type SetupOptions struct {
	SkipPortCheck  bool
	NonInteractive bool
}

// SetupResult is the aggregate outcome of all setup steps.
type SetupResult struct {
	Steps       []StepResult
	HasErrors   bool
	HasWarnings bool
}

// dirPermBase is the permission mode for the base and log directories.
const dirPermBase = 0o700

// formatStatus returns a status marker appropriate for the output mode.
func formatStatus(status StepStatus, nonInteractive bool) string {
	if nonInteractive {
		switch status {
		case StepSuccess:
			return "[OK]"
		case StepWarning:
			return "[WARN]"
		case StepSkipped:
			return "[SKIP]"
		case StepError:
			return "[ERR]"
		default:
			return "[??]"
		}
	}

	switch status {
	case StepSuccess:
		return "\u2713" // ✓
	case StepWarning:
		return "!"
	case StepSkipped:
		return "-"
	case StepError:
		return "\u2717" // ✗
	default:
		return "?"
	}
}

// NewSetupCmd creates the top-level setup command that bootstraps the listpager environment.
func NewSetupCmd(s *session) *cobra.Command {
	var opts SetupOptions

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Bootstrap the listpager environment",
		Long: `Sets up listpager by creating its directories, writing a default
configuration file, and checking that the configured dataset loads and the
server address is free.

This command is idempotent: it is safe to run multiple times. Existing
configuration files are preserved.`,
		Example: `  # Full setup
  listpager setup

  # CI/CD setup (no TTY-dependent output)
  listpager setup --non-interactive

  # Setup without probing the server port
  listpager setup --skip-port-check`,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSetup(cmd, s.configPath, &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.NonInteractive, "non-interactive", false,
		"Disable TTY-dependent output (status symbols, color)")
	cmd.Flags().BoolVar(&opts.SkipPortCheck, "skip-port-check", false,
		"Skip checking that the server address is free")

	return cmd
}

// runSetup orchestrates all setup steps using a collect-and-continue pattern.
// Each step is executed sequentially. Failures in one step do not prevent
// subsequent steps from running. The function returns an error only if a
// critical step fails.
func runSetup(cmd *cobra.Command, configPath string, opts *SetupOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	log := logging.FromContext(ctx)

	// Auto-detect non-interactive mode when stdin is not a TTY
	if !opts.NonInteractive && !isTerminal(os.Stdin) {
		opts.NonInteractive = true
	}

	result := &SetupResult{}
	record := func(step StepResult) {
		printStep(cmd, step, opts.NonInteractive)
		result.Steps = append(result.Steps, step)
	}

	record(stepDisplayVersion())

	for _, step := range stepCreateDirectories() {
		record(step)
	}

	if configPath == "" {
		if p, err := config.DefaultConfigPath(); err == nil {
			configPath = p
		}
	}
	record(stepInitConfig(configPath))

	step, cfg := stepLoadConfig(configPath)
	record(step)

	if cfg != nil {
		record(stepCheckDataset(cfg))
		if opts.SkipPortCheck {
			record(StepResult{
				Name:    "Port check",
				Status:  StepSkipped,
				Message: "Skipped server port check",
			})
		} else {
			record(stepCheckPort(cfg))
		}
	}

	// Compute aggregate status
	for _, s := range result.Steps {
		if s.Status == StepError && s.Critical {
			result.HasErrors = true
		}
		if s.Status == StepWarning {
			result.HasWarnings = true
		}
	}

	printSummary(cmd, result)

	if result.HasErrors {
		log.Error().
			Ctx(ctx).
			Str("component", "setup").
			Msg("setup completed with critical errors")
		return errors.New("setup failed: one or more critical steps failed")
	}

	return nil
}

// printStep outputs a single step's status line.
func printStep(cmd *cobra.Command, step StepResult, nonInteractive bool) {
	marker := formatStatus(step.Status, nonInteractive)
	cmd.Printf("%s %s\n", marker, step.Message)
}

// printSummary outputs the final completion message.
func printSummary(cmd *cobra.Command, result *SetupResult) {
	cmd.Println()
	if result.HasErrors {
		cmd.Println("Setup completed with errors. Review the messages above for remediation steps.")
	} else {
		cmd.Println("Setup complete! Run 'listpager list' or 'listpager browse' to get started.")
	}
}

// stepDisplayVersion reports the listpager version and Go runtime.
func stepDisplayVersion() StepResult {
	return StepResult{
		Name:    "Version display",
		Status:  StepSuccess,
		Message: fmt.Sprintf("listpager %s (%s)", version.GetVersion(), runtime.Version()),
	}
}

// stepCreateDirectories creates the listpager home and log directories.
// Returns one StepResult per directory.
func stepCreateDirectories() []StepResult {
	baseDir, err := config.GetConfigDir()
	if err != nil {
		return []StepResult{{
			Name:     "Directory creation",
			Status:   StepError,
			Message:  fmt.Sprintf("Cannot resolve config directory: %v", err),
			Critical: true,
			Err:      err,
		}}
	}

	var results []StepResult
	for _, dir := range []string{baseDir, filepath.Join(baseDir, "logs")} {
		info, statErr := os.Stat(dir)
		if statErr == nil && info.IsDir() {
			results = append(results, StepResult{
				Name:     "Directory creation",
				Status:   StepSuccess,
				Message:  fmt.Sprintf("Directory exists: %s", dir),
				Critical: true,
			})
			continue
		}

		if mkErr := os.MkdirAll(dir, dirPermBase); mkErr != nil {
			results = append(results, StepResult{
				Name:   "Directory creation",
				Status: StepError,
				Message: fmt.Sprintf(
					"Failed to create %s: %v\n  Try: export %s=/path/to/writable/directory",
					dir, mkErr, config.EnvHome,
				),
				Critical: true,
				Err:      mkErr,
			})
			continue
		}

		results = append(results, StepResult{
			Name:     "Directory creation",
			Status:   StepSuccess,
			Message:  fmt.Sprintf("Created %s", dir),
			Critical: true,
		})
	}

	return results
}

// stepInitConfig writes the default config file if one does not exist.
func stepInitConfig(path string) StepResult {
	if path == "" {
		return StepResult{
			Name:     "Config initialization",
			Status:   StepError,
			Message:  "Cannot resolve config file path",
			Critical: true,
		}
	}

	if _, err := os.Stat(path); err == nil {
		return StepResult{
			Name:     "Config initialization",
			Status:   StepSuccess,
			Message:  fmt.Sprintf("Config already exists (%s)", path),
			Critical: true,
		}
	}

	if err := config.Default().Save(path); err != nil {
		return StepResult{
			Name:     "Config initialization",
			Status:   StepError,
			Message:  fmt.Sprintf("Failed to initialize config: %v", err),
			Critical: true,
			Err:      err,
		}
	}

	return StepResult{
		Name:     "Config initialization",
		Status:   StepSuccess,
		Message:  fmt.Sprintf("Initialized config (%s)", path),
		Critical: true,
	}
}

// stepLoadConfig loads and validates the configuration. The config is nil
// when loading failed.
func stepLoadConfig(path string) (StepResult, *config.Config) {
	cfg, err := config.Load(config.Options{Path: path})
	if err != nil {
		return StepResult{
			Name:   "Config validation",
			Status: StepError,
			Message: fmt.Sprintf("Invalid configuration: %v\n  Try: listpager config validate --verbose",
				err),
			Critical: true,
			Err:      err,
		}, nil
	}
	return StepResult{
		Name:     "Config validation",
		Status:   StepSuccess,
		Message:  "Configuration is valid",
		Critical: true,
	}, cfg
}

// stepCheckDataset loads the configured dataset.
func stepCheckDataset(cfg *config.Config) StepResult {
	set, err := dataset.Open(cfg.DatasetSource())
	if err != nil {
		return StepResult{
			Name:     "Dataset check",
			Status:   StepError,
			Message:  fmt.Sprintf("Dataset could not be loaded: %v", err),
			Critical: true,
			Err:      err,
		}
	}

	pageSize := cfg.Pagination.PageSize
	return StepResult{
		Name:   "Dataset check",
		Status: StepSuccess,
		Message: fmt.Sprintf("Dataset loaded: %d %s, %d per page (%d pages)",
			set.Len(), set.Kind, pageSize, pagination.TotalPages(set.Len(), pageSize)),
		Critical: true,
	}
}

// stepCheckPort reports whether the server address can be bound.
func stepCheckPort(cfg *config.Config) StepResult {
	addr := cfg.Addr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return StepResult{
			Name:   "Port check",
			Status: StepWarning,
			Message: fmt.Sprintf("Cannot listen on %s: %v\n  Try: listpager serve --port <free port>",
				addr, err),
			Err: err,
		}
	}
	_ = ln.Close()

	return StepResult{
		Name:    "Port check",
		Status:  StepSuccess,
		Message: fmt.Sprintf("Server address %s is free", addr),
	}
}
