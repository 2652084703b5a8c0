// Package store holds the canonical deck document for an editing session and
// exposes invariant-preserving mutation operations over it. It performs no
// I/O: generation results arrive through Replace and the merge operations,
// user edits through the indexed operations, and asynchronous per-page
// results through UpdatePageByID.
package store
