// Package httpx contains the shared HTTP plumbing used by LLM providers:
// synchronous JSON POST requests, streaming (SSE) POST requests, an SSE
// event scanner, and small string/pointer helpers. It is internal because its
// API is shaped around the needs of the providers, not general consumption.
package httpx
