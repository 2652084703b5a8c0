package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"deckplan/core/deck"
)

// ErrIndexOutOfRange is returned when a mutation targets an index outside the
// current page sequence. Under correct caller usage this indicates a
// programming error, not a user-facing condition.
var ErrIndexOutOfRange = errors.New("page index out of range")

// ErrDuplicatePageID is returned when an update or insert would leave two
// pages with the same id, which would break apply-by-id reconciliation.
var ErrDuplicatePageID = errors.New("duplicate page id")

// ErrNoDeck is returned when a mutation is attempted before the first
// successful generation has installed a deck.
var ErrNoDeck = errors.New("no deck loaded")

// Store holds the canonical Deck as the single source of truth for an editing
// session. Every mutation builds a new Deck value and installs it atomically
// as a whole-document replacement, so a reader never observes a half-updated
// deck and a Deck snapshot handed out earlier is never mutated underneath its
// holder.
//
// A Store is safe for concurrent use; independent generation completions
// (primary, design, per-page polish) apply their results through it in
// whatever order they arrive.
type Store struct {
	mu   sync.RWMutex
	deck *deck.Deck
}

// New creates an empty store. The pre-state before the first generation has
// no deck; mutations in that state return [ErrNoDeck].
func New() *Store {
	return &Store{}
}

// Current returns the current deck snapshot, or nil before the first
// generation. The returned value must be treated as immutable.
func (s *Store) Current() *deck.Deck {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deck
}

// Replace installs a freshly assembled deck wholesale, discarding any
// previous state. This is how a successful primary generation becomes
// visible.
func (s *Store) Replace(d *deck.Deck) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deck = d
}

// Reset discards the deck, returning the store to its empty pre-state. Used
// when the user abandons the editing session.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deck = nil
}

// UpdatePage replaces the page at index with newPage and returns the new
// deck. The page at index keeps its position; all other pages are untouched.
func (s *Store) UpdatePage(index int, newPage deck.Page) (*deck.Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deck == nil {
		return nil, ErrNoDeck
	}
	if index < 0 || index >= len(s.deck.Pages) {
		return nil, ErrIndexOutOfRange
	}
	for i, page := range s.deck.Pages {
		if i != index && page.ID == newPage.ID {
			return nil, ErrDuplicatePageID
		}
	}

	next := s.deck.Clone()
	next.Pages[index] = newPage
	s.deck = next
	return next, nil
}

// DeletePage removes the page at index, shifting subsequent pages down by
// one, and returns the new deck.
func (s *Store) DeletePage(index int) (*deck.Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deck == nil {
		return nil, ErrNoDeck
	}
	if index < 0 || index >= len(s.deck.Pages) {
		return nil, ErrIndexOutOfRange
	}

	next := s.deck.Clone()
	next.Pages = append(next.Pages[:index], next.Pages[index+1:]...)
	s.deck = next
	return next, nil
}

// InsertPage inserts page at index, shifting subsequent pages up; index may
// equal the page count to append. A nil page inserts a fresh placeholder
// slide with a unique id.
func (s *Store) InsertPage(index int, page *deck.Page) (*deck.Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deck == nil {
		return nil, ErrNoDeck
	}
	if index < 0 || index > len(s.deck.Pages) {
		return nil, ErrIndexOutOfRange
	}

	inserted := placeholderPage()
	if page != nil {
		inserted = *page
	}
	for _, existing := range s.deck.Pages {
		if existing.ID == inserted.ID {
			return nil, ErrDuplicatePageID
		}
	}

	next := s.deck.Clone()
	next.Pages = append(next.Pages[:index], append([]deck.Page{inserted}, next.Pages[index:]...)...)
	s.deck = next
	return next, nil
}

// ReorderPage moves the page at fromIndex to toIndex using standard move
// semantics: the page is removed first, then reinserted at toIndex computed
// against the post-removal sequence. toIndex is clamped to the valid
// insertion range; equal indices are a no-op.
func (s *Store) ReorderPage(fromIndex, toIndex int) (*deck.Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deck == nil {
		return nil, ErrNoDeck
	}
	if fromIndex < 0 || fromIndex >= len(s.deck.Pages) {
		return nil, ErrIndexOutOfRange
	}
	if fromIndex == toIndex {
		return s.deck, nil
	}

	next := s.deck.Clone()
	moved := next.Pages[fromIndex]
	next.Pages = append(next.Pages[:fromIndex], next.Pages[fromIndex+1:]...)

	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex > len(next.Pages) {
		toIndex = len(next.Pages)
	}
	next.Pages = append(next.Pages[:toIndex], append([]deck.Page{moved}, next.Pages[toIndex:]...)...)

	s.deck = next
	return next, nil
}

// SelectColorScheme sets the scheme currently in effect. No membership check
// against ColorSchemes is performed: user-customized schemes are acceptable.
func (s *Store) SelectColorScheme(scheme deck.ColorScheme) (*deck.Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deck == nil {
		return nil, ErrNoDeck
	}

	next := s.deck.Clone()
	next.SelectedColorScheme = &scheme
	s.deck = next
	return next, nil
}

// UpdatePageByID applies fn to the page carrying id, if it still exists.
// It reports whether the update was applied; a vanished id is not an error —
// asynchronous results targeting deleted pages are expected and silently
// discarded by the caller.
//
// This is the reconciliation primitive for asynchronous per-page results:
// application is a conditional upsert-if-present keyed by entity id, never an
// index-based write, because concurrent structural edits can invalidate
// positional indices between request and response.
func (s *Store) UpdatePageByID(id string, fn func(deck.Page) deck.Page) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deck == nil {
		return false, ErrNoDeck
	}

	_, index, found := s.deck.PageByID(id)
	if !found {
		return false, nil
	}

	updated := fn(s.deck.Pages[index])
	if updated.ID != id {
		// The transform must not reassign identity.
		return false, ErrDuplicatePageID
	}

	next := s.deck.Clone()
	next.Pages[index] = updated
	s.deck = next
	return true, nil
}

// PageByID returns a snapshot of the page carrying id.
func (s *Store) PageByID(id string) (deck.Page, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.deck == nil {
		return deck.Page{}, false
	}
	page, _, found := s.deck.PageByID(id)
	return page, found
}

// MergeDesign installs an auxiliary design payload into the current deck.
func (s *Store) MergeDesign(design *deck.DesignSystem) (*deck.Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deck == nil {
		return nil, ErrNoDeck
	}

	next := s.deck.Clone()
	next.MergeDesign(design)
	s.deck = next
	return next, nil
}

// MergeColorSchemes merges auxiliary color scheme suggestions into the
// current deck without overwriting schemes already present.
func (s *Store) MergeColorSchemes(schemes []deck.ColorScheme) (*deck.Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deck == nil {
		return nil, ErrNoDeck
	}

	next := s.deck.Clone()
	next.MergeColorSchemes(schemes)
	s.deck = next
	return next, nil
}

// placeholderPage builds the empty slide inserted by explicit user action.
// The uuid-based id cannot collide with assembler-issued "page-…" ids.
func placeholderPage() deck.Page {
	return deck.Page{
		ID:      "new-" + uuid.NewString(),
		Title:   "New Slide",
		Content: "Add content here...",
		Visual:  "No visual suggestion yet.",
		Type:    deck.PageContent,
	}
}
