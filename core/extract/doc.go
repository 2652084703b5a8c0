// Package extract recovers structured JSON from raw LLM text output. Because
// language models frequently wrap JSON in narrative prose or markdown code
// fences despite instructions, this package applies a layered recovery
// strategy — fence stripping, outermost-brace slicing, and automatic JSON
// repair — before falling back to a clear error.
//
// The main entry points are [ExtractJSON] for loosely-typed payloads and the
// generic [ExtractAs] for payloads with a known shape.
package extract
