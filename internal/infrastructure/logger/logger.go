package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Output is where logs are written. Stdout carries the MCP stdio protocol, so
// logs always go to stderr.
var Output io.Writer = os.Stderr

// Init configures the global zerolog logger from level and format settings.
// Unknown levels fall back to info and unknown formats to json.
func Init(level, format string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	var writer io.Writer = Output
	if strings.ToLower(strings.TrimSpace(format)) == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        Output,
			TimeFormat: time.RFC3339,
		}
	}

	log.Logger = zerolog.New(writer).With().Timestamp().Str("service", "saos-mcp-server").Logger()
}
