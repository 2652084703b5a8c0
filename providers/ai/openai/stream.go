package openai

import (
	"context"
	"fmt"
	"io"

	"deckplan/internal/httpx"
	"deckplan/providers/ai"
	"deckplan/providers/observability"
)

// StreamMessage implements ai.StreamProvider for the chat completions endpoint.
// It sends a streaming request with stream=true and returns a ChatStream that
// yields incremental deltas as SSE events arrive from the API.
func (p *Provider) StreamMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatStream, error) {
	observer := observability.ObserverFromContext(ctx)

	if observer != nil {
		observer.Trace(ctx, "OpenAI provider preparing streaming request",
			observability.String(observability.AttrLLMProvider, "openai"),
			observability.String(observability.AttrLLMEndpoint, p.baseURL),
			observability.String(observability.AttrLLMModel, request.Model),
			observability.Int("request.messages_count", len(request.Messages)),
		)
	}

	if err := p.checkAPIKey(); err != nil {
		return nil, err
	}

	chatRequest := requestToChatCompletion(request)

	// Enable streaming with usage reporting
	streamEnabled := true
	chatRequest.Stream = &streamEnabled
	chatRequest.StreamOptions = &streamOptions{IncludeUsage: true}

	// Send the streaming request — body is left open for SSE reading
	streamURL := p.baseURL + chatCompletionsEndpoint
	httpResponse, err := httpx.DoPostStream(ctx, p.client, streamURL, p.apiKey, chatRequest)
	if err != nil {
		if observer != nil {
			observer.Warn(ctx, "Streaming HTTP request failed", observability.Error(err))
		}
		return nil, err
	}

	// Build the iterator function that reads SSE events and converts them to StreamEvents
	sseScanner := httpx.NewSSEScanner(httpResponse.Body)

	iteratorFunc := func(yield func(ai.StreamEvent, error) bool) {
		// Ensure the response body is closed when the iterator is done
		defer httpx.CloseWithLog(httpResponse.Body)

		for {
			// Check for context cancellation
			if ctx.Err() != nil {
				yield(ai.StreamEvent{}, ctx.Err())
				return
			}

			payload, sseErr := sseScanner.Next()
			if sseErr == io.EOF {
				// Stream finished normally
				return
			}
			if sseErr != nil {
				yield(ai.StreamEvent{}, fmt.Errorf("SSE read error: %w", sseErr))
				return
			}

			// Parse the SSE payload into a streaming chunk
			chunk, parseErr := unmarshalStreamChunk(payload)
			if parseErr != nil {
				yield(ai.StreamEvent{}, fmt.Errorf("failed to parse streaming chunk: %w", parseErr))
				return
			}

			// Convert chunk to StreamEvents and yield them
			events := chunkToStreamEvents(chunk)
			for _, event := range events {
				if !yield(event, nil) {
					return // Caller stopped iterating
				}
			}
		}
	}

	return ai.NewChatStream(iteratorFunc), nil
}

// chunkToStreamEvents converts a single streaming chunk into one or more StreamEvents.
// A single chunk can carry multiple types of data (content + usage + finish reason).
func chunkToStreamEvents(chunk *chatCompletionStreamChunk) []ai.StreamEvent {
	var events []ai.StreamEvent

	// Handle usage metadata (present in the final chunk when stream_options.include_usage is true).
	// Usage chunk typically has empty choices, so process it before choices.
	if chunk.Usage != nil {
		events = append(events, ai.StreamEvent{
			Type: ai.StreamEventUsage,
			Usage: &ai.Usage{
				PromptTokens:     chunk.Usage.PromptTokens,
				CompletionTokens: chunk.Usage.CompletionTokens,
				TotalTokens:      chunk.Usage.TotalTokens,
			},
		})
	}

	for _, choice := range chunk.Choices {
		delta := choice.Delta

		// Content delta
		if delta.Content != nil && *delta.Content != "" {
			events = append(events, ai.StreamEvent{
				Type:    ai.StreamEventContent,
				Content: *delta.Content,
			})
		}

		// Finish reason (done signal)
		if choice.FinishReason != nil && *choice.FinishReason != "" {
			events = append(events, ai.StreamEvent{
				Type:         ai.StreamEventDone,
				FinishReason: *choice.FinishReason,
			})
		}
	}

	return events
}
