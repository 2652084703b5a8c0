// Package observability defines the logging abstraction shared by every layer
// of the deckplan pipeline. Components never log directly; they look up an
// [Observer] from the request context and emit structured records through it.
// A nil observer is always valid and means "no logging", so callers guard
// each call site with a nil check rather than injecting no-op implementations.
//
// The slogobs subpackage provides the standard implementation backed by
// log/slog.
package observability
