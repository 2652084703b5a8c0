package slogobs

import (
	"context"
	"log/slog"

	"deckplan/providers/observability"
)

// LevelTrace is the slog level used for Trace records. slog has no trace
// level of its own, so we slot one in below Debug.
const LevelTrace = slog.Level(-8)

// Observer implements observability.Observer using Go's standard library
// slog. It routes every log event through a structured slog.Logger, making it
// suitable for lightweight observability without external dependencies.
type Observer struct {
	logger *slog.Logger
}

// New creates a slog-based observer with functional options. With no options
// it logs in text format to stderr at INFO level, honouring the
// DECKPLAN_LOG_LEVEL environment variable when set.
//
// Example usage:
//
//	// Use defaults
//	observer := slogobs.New()
//
//	// Explicit configuration
//	observer := slogobs.New(slogobs.WithLevel(slog.LevelDebug))
//
//	// Use existing logger
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
//	observer := slogobs.New(slogobs.WithLogger(logger))
func New(opts ...Option) *Observer {
	cfg := applyOptions(opts...)

	logger := cfg.logger
	if logger == nil {
		handler := slog.NewTextHandler(cfg.output, &slog.HandlerOptions{Level: cfg.level})
		logger = slog.New(handler)
	}

	return &Observer{logger: logger}
}

// Ensure Observer implements observability.Observer
var _ observability.Observer = (*Observer)(nil)

// Trace logs at the custom trace level (below debug).
func (o *Observer) Trace(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.Log(ctx, LevelTrace, msg, toSlogArgs(attrs)...)
}

// Debug logs at debug level.
func (o *Observer) Debug(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.Log(ctx, slog.LevelDebug, msg, toSlogArgs(attrs)...)
}

// Info logs at info level.
func (o *Observer) Info(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.Log(ctx, slog.LevelInfo, msg, toSlogArgs(attrs)...)
}

// Warn logs at warn level.
func (o *Observer) Warn(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.Log(ctx, slog.LevelWarn, msg, toSlogArgs(attrs)...)
}

// Error logs at error level.
func (o *Observer) Error(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.Log(ctx, slog.LevelError, msg, toSlogArgs(attrs)...)
}

// toSlogArgs converts observability attributes into slog key-value arguments.
func toSlogArgs(attrs []observability.Attribute) []any {
	args := make([]any, 0, len(attrs)*2)
	for _, attr := range attrs {
		args = append(args, attr.Key, attr.Value)
	}
	return args
}
