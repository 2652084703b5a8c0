package ai

import (
	"iter"
	"strings"
)

// StreamEventType identifies the kind of delta carried by a StreamEvent.
type StreamEventType string

const (
	// StreamEventContent indicates a text content delta.
	StreamEventContent StreamEventType = "content"
	// StreamEventUsage carries token usage metadata (typically the final event).
	StreamEventUsage StreamEventType = "usage"
	// StreamEventDone signals that the stream has finished normally.
	StreamEventDone StreamEventType = "done"
	// StreamEventError signals an error that terminated the stream.
	StreamEventError StreamEventType = "error"
)

// StreamEvent represents a single delta yielded during LLM response streaming.
// Each event carries exactly one type of payload, identified by the Type field.
type StreamEvent struct {
	Type         StreamEventType `json:"type"`
	Content      string          `json:"content,omitempty"`       // Text delta (Type == StreamEventContent)
	Usage        *Usage          `json:"usage,omitempty"`         // Token usage (Type == StreamEventUsage)
	FinishReason string          `json:"finish_reason,omitempty"` // Present on StreamEventDone
	Error        string          `json:"error,omitempty"`         // Error message (Type == StreamEventError)
}

// ChatStream wraps a streaming iterator and provides automatic accumulation
// of deltas into a final ChatResponse. It supports both range-based iteration
// for real-time token processing and a convenience Collect() method for callers
// who want the complete response.
//
// Important: callers must consume the stream, either by iterating with Iter()
// (including breaking out of the loop early) or by calling Collect(). The
// underlying provider may hold open resources (such as an HTTP response body)
// that are only released when the iterator completes or is abandoned via a
// loop break. Constructing a ChatStream and never iterating it will leak those
// resources.
type ChatStream struct {
	iterator iter.Seq2[StreamEvent, error]
}

// NewChatStream creates a ChatStream from a raw streaming iterator.
// The iterator is expected to yield StreamEvent values (with nil error) for
// normal deltas, and may yield a non-nil error to signal a mid-stream failure.
// The caller is responsible for consuming the returned ChatStream (see ChatStream
// documentation for resource management details).
func NewChatStream(iterator iter.Seq2[StreamEvent, error]) *ChatStream {
	return &ChatStream{iterator: iterator}
}

// NewSingleEventStream wraps a synchronous ChatResponse as a single-event stream.
// This is used as a fallback when the provider does not support streaming: the
// entire response is delivered as one content event followed by a done event.
func NewSingleEventStream(response *ChatResponse) *ChatStream {
	iteratorFunc := func(yield func(StreamEvent, error) bool) {
		// Yield content if present
		if response.Content != "" {
			if !yield(StreamEvent{Type: StreamEventContent, Content: response.Content}, nil) {
				return
			}
		}

		// Yield usage if present
		if response.Usage != nil {
			if !yield(StreamEvent{Type: StreamEventUsage, Usage: response.Usage}, nil) {
				return
			}
		}

		// Yield done event
		yield(StreamEvent{Type: StreamEventDone, FinishReason: response.FinishReason}, nil)
	}

	return NewChatStream(iteratorFunc)
}

// Iter returns the underlying iterator for use with range-over-func loops.
//
// Example:
//
//	for event, err := range stream.Iter() {
//	    if err != nil { handle error }
//	    fmt.Print(event.Content)
//	}
func (stream *ChatStream) Iter() iter.Seq2[StreamEvent, error] {
	return stream.iterator
}

// Collect consumes the entire stream and returns the accumulated ChatResponse.
// Content deltas are concatenated strictly in arrival order, with no
// reordering or buffering beyond simple concatenation.
//
// Any mid-stream error terminates collection and returns the partial response
// together with the error; callers that need the full document must treat a
// non-nil error as "no usable text" rather than attempting recovery on the
// partial accumulation.
func (stream *ChatStream) Collect() (*ChatResponse, error) {
	accumulated := &ChatResponse{}
	var content strings.Builder

	for event, err := range stream.iterator {
		if err != nil {
			accumulated.Content = content.String()
			return accumulated, err
		}

		switch event.Type {
		case StreamEventContent:
			content.WriteString(event.Content)

		case StreamEventUsage:
			if event.Usage != nil {
				accumulated.Usage = event.Usage
			}

		case StreamEventDone:
			accumulated.FinishReason = event.FinishReason

		case StreamEventError:
			// Error events are informational; the actual error comes through the iterator's error channel
		}
	}

	accumulated.Content = content.String()
	return accumulated, nil
}
