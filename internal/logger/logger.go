// Package logger builds the zerolog logger used by the ehrlens command line tool.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a JSON logger writing to stderr with an RFC3339Nano "time" field.
// Stdout stays free for command output such as CSV tables.
//
// Environment switches:
//   - PRETTY=1 writes human readable console output instead
//   - DEBUG=1 lowers the level to debug
func New() zerolog.Logger {
	return newLogger(os.Stderr, os.Stderr, os.Getenv("PRETTY") == "1", os.Getenv("DEBUG") == "1")
}

func newLogger(out, pretty io.Writer, usePretty, debug bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.TimestampFieldName = "time"

	w := out
	if usePretty {
		w = zerolog.ConsoleWriter{Out: pretty}
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
