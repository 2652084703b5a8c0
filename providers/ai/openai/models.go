package openai

import (
	"encoding/json"

	"deckplan/providers/ai"
)

/*
	CHAT COMPLETIONS API - INPUT
*/

// chatCompletionRequest represents the /v1/chat/completions request format
type chatCompletionRequest struct {
	Model         string         `json:"model"`
	Messages      []chatMessage  `json:"messages"`
	Temperature   *float64       `json:"temperature,omitempty"`
	MaxTokens     *int           `json:"max_tokens,omitempty"`
	Stream        *bool          `json:"stream,omitempty"`
	StreamOptions *streamOptions `json:"stream_options,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"` // system, user, assistant
	Content string `json:"content,omitempty"`
}

// streamOptions configures streaming behavior in the request.
type streamOptions struct {
	IncludeUsage bool `json:"include_usage"`
}

/*
	CHAT COMPLETIONS API - OUTPUT
*/

type chatCompletionResponse struct {
	ID                string       `json:"id"`
	Object            string       `json:"object"` // "chat.completion"
	Created           int64        `json:"created"`
	Model             string       `json:"model"`
	SystemFingerprint string       `json:"system_fingerprint,omitempty"`
	Choices           []chatChoice `json:"choices"`
	Usage             *chatUsage   `json:"usage,omitempty"`
}

type chatChoice struct {
	Index        int                 `json:"index"`
	Message      chatResponseMessage `json:"message"`
	FinishReason string              `json:"finish_reason"` // "stop", "length", "content_filter"
}

type chatResponseMessage struct {
	Role    string `json:"role"` // "assistant"
	Content string `json:"content,omitempty"`
	Refusal string `json:"refusal,omitempty"` // If model refuses
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

/*
	CHAT COMPLETIONS STREAMING API - RESPONSE TYPES

	These types model the SSE chunks returned by the /v1/chat/completions
	endpoint when stream=true. Each chunk carries incremental content deltas
	and optionally usage metadata (when stream_options includes include_usage).
*/

// chatCompletionStreamChunk represents a single SSE chunk from the streaming
// chat completions endpoint.
type chatCompletionStreamChunk struct {
	ID      string         `json:"id"`
	Object  string         `json:"object"` // "chat.completion.chunk"
	Created int64          `json:"created"`
	Model   string         `json:"model"`
	Choices []streamChoice `json:"choices"`
	Usage   *chatUsage     `json:"usage,omitempty"` // Present only in final chunk when stream_options.include_usage is true
}

// streamChoice represents a single choice in a streaming chunk.
// Unlike the non-streaming chatChoice, it uses Delta instead of Message.
type streamChoice struct {
	Index        int         `json:"index"`
	Delta        streamDelta `json:"delta"`
	FinishReason *string     `json:"finish_reason"` // Nullable; nil until the final chunk for this choice
}

// streamDelta carries the incremental content for a streaming chunk.
// All fields are optional — a chunk may carry only content, only a role, etc.
type streamDelta struct {
	Role    string  `json:"role,omitempty"`
	Content *string `json:"content,omitempty"` // Nullable to distinguish empty string from absent
	Refusal *string `json:"refusal,omitempty"` // Model refusal delta
}

// unmarshalStreamChunk parses a raw SSE data payload into a chatCompletionStreamChunk.
func unmarshalStreamChunk(data string) (*chatCompletionStreamChunk, error) {
	var chunk chatCompletionStreamChunk
	if err := json.Unmarshal([]byte(data), &chunk); err != nil {
		return nil, err
	}
	return &chunk, nil
}

/*
	CONVERSION FUNCTIONS
*/

// requestToChatCompletion converts ai.ChatRequest to chat completions format
func requestToChatCompletion(request ai.ChatRequest) chatCompletionRequest {
	req := chatCompletionRequest{
		Model: request.Model,
	}

	// The system prompt always leads the message list
	if request.SystemPrompt != "" {
		req.Messages = append(req.Messages, chatMessage{
			Role:    string(ai.RoleSystem),
			Content: request.SystemPrompt,
		})
	}

	for _, msg := range request.Messages {
		req.Messages = append(req.Messages, chatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	if config := request.GenerationConfig; config != nil {
		if config.Temperature != 0 {
			temperature := config.Temperature
			req.Temperature = &temperature
		}
		if config.MaxTokens > 0 {
			maxTokens := config.MaxTokens
			req.MaxTokens = &maxTokens
		}
	}

	return req
}

// responseToGeneric converts a chat completions response to the generic ai.ChatResponse
func responseToGeneric(resp chatCompletionResponse) *ai.ChatResponse {
	response := &ai.ChatResponse{
		Id:      resp.ID,
		Model:   resp.Model,
		Object:  resp.Object,
		Created: resp.Created,
	}

	if len(resp.Choices) > 0 {
		choice := resp.Choices[0]
		response.Content = choice.Message.Content
		response.Refusal = choice.Message.Refusal
		response.FinishReason = choice.FinishReason
	}

	if resp.Usage != nil {
		response.Usage = &ai.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}

	return response
}
