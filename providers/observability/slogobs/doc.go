// Package slogobs implements the observability.Observer interface on top of
// log/slog. It is the default observer used by the deckplan CLI.
package slogobs
