package httpx

import (
	"io"
	"log/slog"
)

// CloseWithLog closes the given closer and logs any close error at warn level.
// It is meant for defer sites where a close failure should not override the
// function's primary error.
func CloseWithLog(closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		slog.Warn("failed to close response body", "error", err.Error())
	}
}
