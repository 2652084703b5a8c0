package slogobs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"deckplan/providers/observability"
)

func TestObserverLevels(t *testing.T) {
	var buf bytes.Buffer
	observer := New(WithOutput(&buf), WithLevel(LevelTrace))
	ctx := context.Background()

	observer.Trace(ctx, "trace message")
	observer.Debug(ctx, "debug message")
	observer.Info(ctx, "info message")
	observer.Warn(ctx, "warn message")
	observer.Error(ctx, "error message")

	output := buf.String()
	for _, want := range []string{"trace message", "debug message", "info message", "warn message", "error message"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestObserverLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	observer := New(WithOutput(&buf), WithLevel(slog.LevelWarn))
	ctx := context.Background()

	observer.Info(ctx, "should be filtered")
	observer.Warn(ctx, "should appear")

	output := buf.String()
	if strings.Contains(output, "should be filtered") {
		t.Error("info record emitted below the configured level")
	}
	if !strings.Contains(output, "should appear") {
		t.Error("warn record missing")
	}
}

func TestObserverAttributes(t *testing.T) {
	var buf bytes.Buffer
	observer := New(WithOutput(&buf), WithLevel(slog.LevelInfo))

	observer.Info(context.Background(), "with attrs",
		observability.String("call.type", "outline"),
		observability.Int("deck.page_count", 12),
	)

	output := buf.String()
	if !strings.Contains(output, "call.type=outline") {
		t.Errorf("output missing string attribute:\n%s", output)
	}
	if !strings.Contains(output, "deck.page_count=12") {
		t.Errorf("output missing int attribute:\n%s", output)
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	observer := New(WithLogger(logger))

	observer.Info(context.Background(), "through custom logger")

	if !strings.Contains(buf.String(), `"msg":"through custom logger"`) {
		t.Errorf("record not routed through the provided logger:\n%s", buf.String())
	}
}

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{name: "trace", value: "trace", want: LevelTrace},
		{name: "debug", value: "debug", want: slog.LevelDebug},
		{name: "warn uppercase", value: "WARN", want: slog.LevelWarn},
		{name: "error", value: "error", want: slog.LevelError},
		{name: "unknown defaults to info", value: "verbose", want: slog.LevelInfo},
		{name: "unset defaults to info", value: "", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DECKPLAN_LOG_LEVEL", tt.value)
			if got := levelFromEnv(); got != tt.want {
				t.Errorf("levelFromEnv() = %v, want %v", got, tt.want)
			}
		})
	}
}
