// Package export renders a deck into the flat text and markdown formats
// consumed by file-download surfaces. All functions are pure: they take a
// deck and return a string, with no side effects.
package export
