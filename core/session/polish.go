package session

import (
	"context"
	"fmt"

	"deckplan/core/deck"
	"deckplan/core/extract"
	"deckplan/providers/observability"
)

// polishResult is the JSON shape returned by the content-producing polish
// calls.
type polishResult struct {
	Content string `json:"content"`
	Visual  string `json:"visual"`
}

// PolishContent rewrites the body content of the page carrying pageID and
// refreshes its visual prompt. The result is applied by page id: if the page
// was deleted (or the deck replaced) while the call was in flight, the result
// is discarded and applied reports false. Parse failures are non-fatal to the
// session — the page simply keeps its previous content.
func (s *Session) PolishContent(ctx context.Context, pageID string) (applied bool, err error) {
	page, found := s.store.PageByID(pageID)
	if !found {
		return false, fmt.Errorf("page %q not found", pageID)
	}

	userPrompt := fmt.Sprintf("Original content:\n%s", page.Content)
	return s.runPagePolish(ctx, "polish_content", pageID, polishContentSystemPrompt, userPrompt)
}

// GenerateFromTitle writes body content (and a visual prompt) for the page
// carrying pageID based on its title alone. Application follows the same
// by-id reconciliation rule as PolishContent.
func (s *Session) GenerateFromTitle(ctx context.Context, pageID string) (applied bool, err error) {
	page, found := s.store.PageByID(pageID)
	if !found {
		return false, fmt.Errorf("page %q not found", pageID)
	}

	userPrompt := fmt.Sprintf("Page title: %s", page.Title)
	return s.runPagePolish(ctx, "content_from_title", pageID, contentFromTitleSystemPrompt, userPrompt)
}

// SuggestVisual asks for a fresh AI image prompt for the page carrying
// pageID. The response is a plain string, not JSON; it replaces the page's
// visual and enables it.
func (s *Session) SuggestVisual(ctx context.Context, pageID string) (applied bool, err error) {
	ctx = s.observedContext(ctx)

	page, found := s.store.PageByID(pageID)
	if !found {
		return false, fmt.Errorf("page %q not found", pageID)
	}

	userPrompt := fmt.Sprintf("Slide title: %s\nSlide content: %s", page.Title, page.Content)
	text, err := s.complete(ctx, visualSystemPrompt, userPrompt, nil)
	if err != nil {
		return false, err
	}

	visual := extract.ExtractText(text)
	if visual == "" {
		return false, fmt.Errorf("visual generation: empty response")
	}

	return s.applyToPage(ctx, "visual", pageID, func(p deck.Page) deck.Page {
		p.Visual = visual
		enabled := true
		p.VisualEnabled = &enabled
		return p
	})
}

// runPagePolish executes one JSON-returning per-page call and applies the
// result to the targeted page.
func (s *Session) runPagePolish(ctx context.Context, callType, pageID, systemPrompt, userPrompt string) (bool, error) {
	ctx = s.observedContext(ctx)

	if s.observer != nil {
		s.observer.Info(ctx, "starting page polish",
			observability.String(observability.AttrCallType, callType),
			observability.String(observability.AttrPageID, pageID),
		)
	}

	text, err := s.complete(ctx, systemPrompt, userPrompt, nil)
	if err != nil {
		return false, err
	}

	result, err := extract.ExtractAs[polishResult](text)
	if err != nil {
		if s.observer != nil {
			s.observer.Warn(ctx, "polish response not parseable",
				observability.String(observability.AttrCallType, callType),
				observability.String(observability.AttrPageID, pageID),
				observability.Error(err),
			)
		}
		return false, fmt.Errorf("%s: %w", callType, err)
	}

	return s.applyToPage(ctx, callType, pageID, func(p deck.Page) deck.Page {
		if result.Content != "" {
			p.Content = result.Content
		}
		if result.Visual != "" {
			p.Visual = result.Visual
			if p.VisualEnabled == nil {
				enabled := true
				p.VisualEnabled = &enabled
			}
		}
		return p
	})
}

// applyToPage performs the conditional by-id upsert, logging discarded
// results for stale pages.
func (s *Session) applyToPage(ctx context.Context, callType, pageID string, fn func(deck.Page) deck.Page) (bool, error) {
	applied, err := s.store.UpdatePageByID(pageID, fn)
	if err != nil {
		return false, err
	}
	if !applied && s.observer != nil {
		s.observer.Debug(ctx, "discarding result for vanished page",
			observability.String(observability.AttrCallType, callType),
			observability.String(observability.AttrPageID, pageID),
		)
	}
	return applied, nil
}
