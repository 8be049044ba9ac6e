/*
Copyright © 2025 the pictverify authors
SPDX-License-Identifier: Apache-2.0
*/

// Package logging configures the process-wide slog default logger.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Options controls logger construction.
type Options struct {
	// Debug forces debug-level logging regardless of LOG_LEVEL.
	Debug bool

	// JSON emits logs in JSON format instead of text.
	JSON bool
}

// Setup installs the default slog logger. The level is taken from the
// LOG_LEVEL environment variable (debug, info, warn, error) unless Debug
// is set, which always wins.
func Setup(opts Options) {
	level := levelFromEnv()
	if opts.Debug {
		level = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}

	slog.SetDefault(slog.New(handler))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
