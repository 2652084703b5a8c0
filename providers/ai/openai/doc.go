// Package openai implements the ai.Provider and ai.StreamProvider interfaces
// against any OpenAI-compatible /v1/chat/completions endpoint, including
// gateways that speak the same wire format under a different base URL.
package openai
