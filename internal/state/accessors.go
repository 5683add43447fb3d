package state

import (
	"github.com/ytget/snapshot/internal/model"
	"github.com/ytget/snapshot/internal/route"
)

// Snapshot is a read-only copy of the state handed to the UI.
// Token slices are shared; the state never mutates a slice after publishing it.
type Snapshot struct {
	Categories      []string
	DefaultCategory string
	Category        string
	Term            string
	Tokens          []model.Token
	Filtered        []model.Token
	Status          model.LoadStatus
	Message         string
	Hovered         *model.Token
	Route           string
	LoadedCount     int
	ErroredCount    int
}

// Category returns the selected category
func (s *State) Category() string { return s.category }

// Term returns the current search field text
func (s *State) Term() string { return s.term }

// DefaultCategory returns the fallback category
func (s *State) DefaultCategory() string { return s.defaultCategory }

// Categories returns a copy of the known categories
func (s *State) Categories() []string {
	return append([]string(nil), s.categories...)
}

// Tokens returns the full list of the selected category
func (s *State) Tokens() []model.Token { return s.tokens }

// Filtered returns the tokens currently shown
func (s *State) Filtered() []model.Token { return s.filtered }

// Message returns the user-facing status message, empty when nothing to report
func (s *State) Message() string { return s.message }

// Status returns the loading indicator state
func (s *State) Status() model.LoadStatus {
	if s.fetchPending || s.searchPending {
		return model.LoadStatusLoading
	}
	return model.LoadStatusIdle
}

// Loading reports whether the loading indicator is on
func (s *State) Loading() bool {
	return s.Status().IsLoading()
}

// TokenSeq returns the sequence number of the latest token fetch
func (s *State) TokenSeq() uint64 { return s.tokenSeq }

// SearchSeq returns the sequence number of the latest submitted search
func (s *State) SearchSeq() uint64 { return s.searchSeq }

// Hovered returns the hovered token
func (s *State) Hovered() (model.Token, bool) {
	if s.hovered == "" {
		return model.Token{}, false
	}
	i, ok := s.keys[s.hovered]
	if !ok {
		return model.Token{}, false
	}
	return s.tokens[i], true
}

// HoveredKey returns the key of the hovered token or ""
func (s *State) HoveredKey() string { return s.hovered }

// IsLoaded reports whether the logo for key has settled (loaded or failed)
func (s *State) IsLoaded(key string) bool {
	_, ok := s.loaded[key]
	return ok
}

// IsErrored reports whether the logo for key failed
func (s *State) IsErrored(key string) bool {
	_, ok := s.errored[key]
	return ok
}

// ImageStatus returns the logo status for key
func (s *State) ImageStatus(key string) model.ImageStatus {
	switch {
	case s.IsErrored(key):
		return model.ImageStatusFailed
	case s.IsLoaded(key):
		return model.ImageStatusLoaded
	default:
		return model.ImageStatusPending
	}
}

// Route returns the address path for the current category and term
func (s *State) Route() string {
	return route.Format(s.category, s.term, s.defaultCategory)
}

// Snapshot copies the state for the UI
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Categories:      s.Categories(),
		DefaultCategory: s.defaultCategory,
		Category:        s.category,
		Term:            s.term,
		Tokens:          s.tokens,
		Filtered:        s.filtered,
		Status:          s.Status(),
		Message:         s.message,
		Route:           s.Route(),
		LoadedCount:     len(s.loaded),
		ErroredCount:    len(s.errored),
	}
	if token, ok := s.Hovered(); ok {
		snap.Hovered = &token
	}
	return snap
}
