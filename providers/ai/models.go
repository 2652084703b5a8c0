package ai

/*
	##### PROVIDER INPUT #####
*/

// ChatRequest represents a request to send a chat message
type ChatRequest struct {
	Model            string            `json:"model,omitempty"`             // Model name or identifier
	Messages         []Message         `json:"messages"`                    // Contains all messages in the conversation except system prompt
	SystemPrompt     string            `json:"system_prompt,omitempty"`     // Optional system prompt
	GenerationConfig *GenerationConfig `json:"generation_config,omitempty"` // Optional generation configuration
}

// Message represents a single message in a conversation
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content,omitempty"`
}

type GenerationConfig struct {
	MaxTokens   int     `json:"max_tokens,omitempty"`  // Optional max tokens for the response
	Temperature float64 `json:"temperature,omitempty"` // Sampling temperature [0..2]. Higher => more random; lower => more deterministic.
}

/*
	##### PROVIDER OUTPUT #####
*/

type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
}

// ChatResponse represents the response from a chat completion
type ChatResponse struct {
	Id           string `json:"id"`
	Model        string `json:"model"`
	Object       string `json:"object"`
	Created      int64  `json:"created"`
	Content      string `json:"content"`
	FinishReason string `json:"finish_reason,omitempty"`
	Usage        *Usage `json:"usage,omitempty"`

	// Refusal is populated when the model declines to respond (safety/policy).
	Refusal string `json:"refusal,omitempty"`
}

/*
	##### ENUMS #####
*/

// MessageRole represents the role of a message; compatible with string
type MessageRole string

const (
	RoleSystem    MessageRole = "system"    // System instructions/configuration
	RoleUser      MessageRole = "user"      // End-user message
	RoleAssistant MessageRole = "assistant" // Model response
)
