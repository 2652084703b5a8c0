package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"deckplan/core/deck"
	"deckplan/core/extract"
	"deckplan/core/store"
	"deckplan/providers/ai"
	"deckplan/providers/observability"
)

// ErrStreamFailed wraps transport errors that occur mid-stream during a
// generation call. The partially accumulated text is discarded: a partial
// JSON document is presumed invalid rather than attempted for recovery.
var ErrStreamFailed = errors.New("generation stream failed")

// Mode selects the outline prompt flavor. It affects only the prompt, never
// the engine's logic.
type Mode string

const (
	// ModeDetail asks for a verbose script-style outline.
	ModeDetail Mode = "detail"
	// ModeSlide asks for terse presentation bullets.
	ModeSlide Mode = "slide"
)

const (
	defaultModel       = "gpt-4o-mini"
	defaultTemperature = 0.7
)

// Option configures a Session.
type Option func(*Session)

// WithModel overrides the model identifier sent with every generation call.
func WithModel(model string) Option {
	return func(s *Session) {
		if model != "" {
			s.model = model
		}
	}
}

// WithTemperature overrides the sampling temperature.
func WithTemperature(temperature float64) Option {
	return func(s *Session) {
		s.temperature = temperature
	}
}

// WithObserver attaches an observer used for logging generation activity.
func WithObserver(observer observability.Observer) Option {
	return func(s *Session) {
		s.observer = observer
	}
}

// WithDeltaHandler registers a callback invoked with each raw text fragment
// as it arrives during a streamed primary generation, for progressive UI
// feedback. Fragments are delivered strictly in arrival order.
func WithDeltaHandler(handler func(delta string)) Option {
	return func(s *Session) {
		s.onDelta = handler
	}
}

// Session orchestrates generation calls against an LLM provider and folds
// their results into its Deck store. It owns the store for the lifetime of
// one editing session; there is no ambient global state.
//
// The primary outline call and the auxiliary design call are independent:
// each applies its result to the store when it resolves, in whatever order
// completions arrive. Auxiliary failures never roll back or block the
// primary result.
type Session struct {
	provider    ai.Provider
	store       *store.Store
	model       string
	temperature float64
	observer    observability.Observer
	onDelta     func(delta string)
}

// New creates a Session around the given provider. The provider is a
// constructed, injectable dependency; the session never reads ambient
// configuration itself.
func New(provider ai.Provider, opts ...Option) *Session {
	s := &Session{
		provider:    provider,
		store:       store.New(),
		model:       defaultModel,
		temperature: defaultTemperature,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store exposes the session's deck store for direct editing operations.
func (s *Session) Store() *store.Store {
	return s.store
}

// Deck returns the current deck snapshot, or nil before the first successful
// generation.
func (s *Session) Deck() *deck.Deck {
	return s.store.Current()
}

// GenerateOutline runs the primary generation call: it sends the seed text to
// the provider, accumulates the (possibly streamed) response, recovers the
// JSON outline, assembles the canonical deck, and installs it in the store.
//
// On any failure the store is left untouched — the previous deck (or the
// empty pre-state) stays intact, never a partially-assembled one. The
// assembled deck becomes visible immediately even if auxiliary calls are
// still pending.
func (s *Session) GenerateOutline(ctx context.Context, seed string, mode Mode) (*deck.Deck, error) {
	ctx = s.observedContext(ctx)

	if s.observer != nil {
		s.observer.Info(ctx, "starting outline generation",
			observability.String(observability.AttrCallType, "outline"),
			observability.String(observability.AttrCallMode, string(mode)),
			observability.String(observability.AttrLLMModel, s.model),
		)
	}

	text, err := s.complete(ctx, outlineSystemPrompt(mode), seed, s.onDelta)
	if err != nil {
		return nil, err
	}

	parsed, err := extract.ExtractJSON(text)
	if err != nil {
		if s.observer != nil {
			s.observer.Error(ctx, "outline response not parseable",
				observability.String(observability.AttrCallType, "outline"),
				observability.Error(err),
			)
		}
		return nil, fmt.Errorf("outline generation: %w", err)
	}

	assembled, err := deck.Assemble(parsed)
	if err != nil {
		return nil, fmt.Errorf("outline generation: %w", err)
	}

	s.store.Replace(assembled)

	if s.observer != nil {
		s.observer.Info(ctx, "outline generation complete",
			observability.String(observability.AttrDeckTopic, assembled.Topic),
			observability.Int(observability.AttrPageCount, len(assembled.Pages)),
		)
	}

	return assembled, nil
}

// GenerateDesign runs the auxiliary design call against the current deck's
// topic and merges the resulting design system into the deck. A failure here
// is non-fatal by contract: the caller reports it and the deck's design
// simply stays absent.
func (s *Session) GenerateDesign(ctx context.Context) (*deck.DesignSystem, error) {
	ctx = s.observedContext(ctx)

	current := s.store.Current()
	if current == nil {
		return nil, store.ErrNoDeck
	}

	if s.observer != nil {
		s.observer.Info(ctx, "starting design generation",
			observability.String(observability.AttrCallType, "design"),
			observability.String(observability.AttrDeckTopic, current.Topic),
		)
	}

	text, err := s.complete(ctx, designSystemPrompt, designSeed(current), nil)
	if err != nil {
		return nil, err
	}

	design, err := extract.ExtractAs[deck.DesignSystem](text)
	if err != nil {
		if s.observer != nil {
			s.observer.Warn(ctx, "design response not parseable",
				observability.String(observability.AttrCallType, "design"),
				observability.Error(err),
			)
		}
		return nil, fmt.Errorf("design generation: %w", err)
	}

	if _, err := s.store.MergeDesign(&design); err != nil {
		// The deck vanished between snapshot and merge (session reset).
		return nil, err
	}

	return &design, nil
}

// complete runs one chat completion, streaming when the provider supports it
// and falling back to the synchronous call otherwise. The returned string is
// the full concatenated response text.
//
// Mid-stream errors abandon the accumulation and wrap [ErrStreamFailed];
// pre-stream errors (auth, connection) pass through unchanged so callers can
// match sentinels like ai.ErrAPIKeyMissing.
func (s *Session) complete(ctx context.Context, systemPrompt, userPrompt string, onDelta func(string)) (string, error) {
	request := ai.ChatRequest{
		Model:        s.model,
		SystemPrompt: systemPrompt,
		Messages: []ai.Message{
			{Role: ai.RoleUser, Content: userPrompt},
		},
		GenerationConfig: &ai.GenerationConfig{Temperature: s.temperature},
	}

	streamProvider, canStream := s.provider.(ai.StreamProvider)
	if !canStream {
		response, err := s.provider.SendMessage(ctx, request)
		if err != nil {
			return "", err
		}
		if onDelta != nil && response.Content != "" {
			onDelta(response.Content)
		}
		return response.Content, nil
	}

	stream, err := streamProvider.StreamMessage(ctx, request)
	if err != nil {
		return "", err
	}

	var accumulated strings.Builder
	for event, iterErr := range stream.Iter() {
		if iterErr != nil {
			// Partial text is discarded, not handed to the extractor.
			return "", fmt.Errorf("%w: %v", ErrStreamFailed, iterErr)
		}
		if event.Type == ai.StreamEventContent {
			accumulated.WriteString(event.Content)
			if onDelta != nil {
				onDelta(event.Content)
			}
		}
	}

	return accumulated.String(), nil
}

// observedContext attaches the session observer to the context so the
// provider and HTTP layers log through it.
func (s *Session) observedContext(ctx context.Context) context.Context {
	if s.observer == nil || observability.ObserverFromContext(ctx) != nil {
		return ctx
	}
	return observability.ContextWithObserver(ctx, s.observer)
}

// designSeed summarizes the current deck for the design call: the topic plus
// the page titles, which is enough signal for a palette and style direction.
func designSeed(d *deck.Deck) string {
	var b strings.Builder
	b.WriteString(d.Topic)
	for _, page := range d.Pages {
		if page.Title == "" {
			continue
		}
		b.WriteString("\n- ")
		b.WriteString(page.Title)
	}
	return b.String()
}
