package slogobs

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Option is a functional option for configuring the Observer.
type Option func(*config)

// config holds the configuration for creating an Observer.
type config struct {
	level  slog.Level
	output io.Writer
	logger *slog.Logger // If provided, use this logger directly
}

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithOutput sets the output writer for logs.
func WithOutput(output io.Writer) Option {
	return func(c *config) {
		c.output = output
	}
}

// WithLogger sets an existing slog.Logger to use directly, bypassing the
// level and output options.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// applyOptions resolves the configuration from defaults, environment, and
// explicit options, in that order of precedence.
func applyOptions(opts ...Option) *config {
	cfg := &config{
		level:  levelFromEnv(),
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// levelFromEnv reads DECKPLAN_LOG_LEVEL. Unknown or missing values default
// to INFO.
func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("DECKPLAN_LOG_LEVEL")) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
