// Package logger provides the shared zerolog logger for the synlogic
// commands and the API layer. The circuit engine itself never logs; callers
// that want visibility log around engine calls.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()

	// Test binaries stay quiet unless a test swaps the logger back in.
	if strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// Logger returns the shared logger instance.
func Logger() zerolog.Logger {
	return logger
}

// Component returns a sublogger tagged with a component name, such as
// "api" or "truthtab".
func Component(name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}

// Set overrides the shared logger.
func Set(l zerolog.Logger) {
	logger = l
}

// SetOutput redirects the shared logger's output.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// SetLevel bounds the shared logger's verbosity.
func SetLevel(level zerolog.Level) {
	logger = logger.Level(level)
}

// Disable turns logging off entirely.
func Disable() {
	logger = zerolog.Nop()
}
