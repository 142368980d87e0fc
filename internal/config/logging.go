package config

import (
	"github.com/rs/zerolog"

	"github.com/rshade/listpager/internal/logging"
)

// ToLoggingConfig converts the logging section to a logging.Config.
//
//   - Level and Format are copied directly
//   - If File is set, Output becomes "file" and File is passed through
//   - If File is empty, Output defaults to "stderr"
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// WithDebug returns a copy of lc forced to debug level on the console,
// which is what --debug asks for.
func (lc LoggingConfig) WithDebug() LoggingConfig {
	lc.Level = zerolog.DebugLevel.String()
	lc.Format = logging.FormatConsole
	lc.File = ""
	return lc
}
