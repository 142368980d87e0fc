package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/listpager/internal/logging"
)

// setupLogging builds the logger from the loaded config and CLI flags, then
// stores it and a trace ID in the command context.
func setupLogging(cmd *cobra.Command, s *session) {
	loggingCfg := s.cfg.Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg = loggingCfg.WithDebug()
	}

	// Ensure log directory exists after all overrides have been applied.
	if loggingCfg.File != "" {
		if err := s.cfg.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.NewLogger(loggingCfg.ToLoggingConfig(), cmd.ErrOrStderr())
	s.logResult = &result
	logger := logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	logger = logger.With().Str("trace_id", traceID).Logger()
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")
}

// cleanupLogging closes the log file handle.
func cleanupLogging(_ *cobra.Command, s *session) error {
	if s.logResult != nil {
		return s.logResult.Close()
	}
	return nil
}
