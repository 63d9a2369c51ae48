// Package logger wires zerolog with env-driven level and output format.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the application logger. LOG_LEVEL picks the level (default
// info), LOG_FORMAT=console switches from JSON to human-readable output.
func New(service string) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var out = zerolog.New(os.Stdout)
	if os.Getenv("LOG_FORMAT") == "console" {
		out = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}

	zerolog.TimeFieldFormat = time.RFC3339

	return out.With().
		Timestamp().
		Str("service", service).
		Logger().
		Level(level)
}
