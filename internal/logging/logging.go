// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the process-wide zerolog logger. All diagnostic
// output goes to stderr: stdout belongs to the MCP stdio transport and
// must carry nothing but protocol frames.
package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/crossref-mcp/pkg/types"
)

// New creates a logger from configuration. Format "console" selects the
// human-readable writer; anything else emits JSON lines.
func New(cfg types.LoggingConfig) zerolog.Logger {
	var out = zerolog.New(os.Stderr)
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	return out.Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "", "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
