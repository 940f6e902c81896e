package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// newLogger builds the CLI logger from the environment.
// LLM_IMPACT_LOG_LEVEL accepts trace, debug, info, warn, error; anything else
// falls back to warn so normal runs stay quiet.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if raw := os.Getenv("LLM_IMPACT_LOG_LEVEL"); raw != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(raw)); err == nil {
			level = parsed
		}
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Logger().
		Level(level)
}
