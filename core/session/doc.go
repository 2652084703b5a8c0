// Package session orchestrates LLM generation calls for one deck editing
// session: the primary outline generation, the auxiliary design call, and
// per-page polish requests. Raw model output flows through the extract and
// deck packages before ever touching the store, and asynchronous per-page
// results are reconciled by page id so stale completions for deleted or
// reordered pages are discarded rather than misapplied.
package session
