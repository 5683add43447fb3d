// Package state holds the browsing view state and its transition function.
//
// Every user action and every asynchronous completion is expressed as an
// Event and applied with State.Apply. Results of token fetches and delayed
// searches carry the sequence number they were issued with; a result whose
// number is not the latest one issued is dropped.
package state

import (
	"github.com/ytget/snapshot/internal/model"
	"github.com/ytget/snapshot/internal/route"
	"github.com/ytget/snapshot/internal/search"
)

// Status messages
const (
	MessageFailedCategories = "Failed to load categories"
	MessageFailedTokens     = "Failed to load tokens"
	MessageNoResults        = search.NoResultsMessage
)

// Change reports which parts of the state an event touched
type Change uint16

const (
	ChangeNone       Change = 0
	ChangeCategories Change = 1 << iota
	ChangeCategory
	ChangeTerm
	ChangeTokens
	ChangeFiltered
	ChangeLoading
	ChangeMessage
	ChangeImages
	ChangeHover
)

// Has reports whether c includes flag
func (c Change) Has(flag Change) bool {
	return c&flag != 0
}

// State is the mutable view state. It is not safe for concurrent use.
type State struct {
	defaultCategory string
	categories      []string

	category  string
	term      string
	committed string

	tokens   []model.Token
	filtered []model.Token
	keys     map[string]int

	loaded  map[string]struct{}
	errored map[string]struct{}
	hovered string

	fetchPending     bool
	searchPending    bool
	message          string
	categoriesFailed bool

	tokenSeq  uint64
	searchSeq uint64
}

// New creates the initial state. The loading flag starts set because the
// first category fetch is issued right away.
func New(categories []string, defaultCategory string) *State {
	s := &State{
		defaultCategory: defaultCategory,
		categories:      append([]string(nil), categories...),
		category:        defaultCategory,
		tokens:          []model.Token{},
		filtered:        []model.Token{},
		fetchPending:    true,
	}
	s.resetIndex()
	return s
}

// Apply performs the transition for e and reports what changed
func (s *State) Apply(e Event) Change {
	switch ev := e.(type) {
	case CategoriesLoaded:
		return s.applyCategoriesLoaded(ev)
	case CategorySelected:
		return s.applyCategorySelected(ev)
	case TokensLoaded:
		return s.applyTokensLoaded(ev)
	case SearchTermChanged:
		if s.term == ev.Term {
			return ChangeNone
		}
		s.term = ev.Term
		return ChangeTerm
	case SearchSubmitted:
		s.committed = s.term
		s.searchSeq = ev.Seq
		s.searchPending = true
		return ChangeLoading
	case SearchApplied:
		return s.applySearchApplied(ev)
	case ImageLoaded:
		return s.markImage(ev.Key, false)
	case ImageFailed:
		return s.markImage(ev.Key, true)
	case HoverEntered:
		if _, ok := s.keys[ev.Key]; !ok || s.hovered == ev.Key {
			return ChangeNone
		}
		s.hovered = ev.Key
		return ChangeHover
	case HoverLeft:
		if s.hovered == "" || s.hovered != ev.Key {
			return ChangeNone
		}
		s.hovered = ""
		return ChangeHover
	}
	return ChangeNone
}

func (s *State) applyCategoriesLoaded(ev CategoriesLoaded) Change {
	if ev.Err != nil {
		s.categoriesFailed = true
		s.message = MessageFailedCategories
		return ChangeMessage
	}
	if len(ev.Categories) == 0 {
		return ChangeNone
	}
	s.categoriesFailed = false
	s.categories = append([]string(nil), ev.Categories...)
	if _, ok := route.Lookup(s.defaultCategory, s.categories); !ok {
		s.defaultCategory = s.categories[0]
	}
	return ChangeCategories
}

func (s *State) applyCategorySelected(ev CategorySelected) Change {
	s.category = ev.Category
	if s.category == "" {
		s.category = s.defaultCategory
	}
	s.term = ""
	s.committed = ""
	s.tokenSeq = ev.Seq
	s.fetchPending = true
	// a search issued against the previous list must not commit
	s.searchPending = false
	s.searchSeq = 0
	s.message = s.statusMessage("")
	s.tokens = []model.Token{}
	s.filtered = []model.Token{}
	s.resetIndex()
	return ChangeCategory | ChangeTerm | ChangeTokens | ChangeFiltered |
		ChangeLoading | ChangeMessage | ChangeImages | ChangeHover
}

func (s *State) applyTokensLoaded(ev TokensLoaded) Change {
	if ev.Seq != s.tokenSeq || !s.fetchPending {
		return ChangeNone
	}
	s.fetchPending = false

	if ev.Err != nil {
		s.tokens = []model.Token{}
		s.filtered = []model.Token{}
		s.message = MessageFailedTokens
		s.resetIndex()
		return ChangeTokens | ChangeFiltered | ChangeLoading | ChangeMessage | ChangeImages | ChangeHover
	}

	s.tokens = ev.Tokens
	if s.tokens == nil {
		s.tokens = []model.Token{}
	}
	s.resetIndex()
	s.filtered = search.Filter(s.tokens, s.committed)
	s.message = s.statusMessage(search.Message(len(s.filtered), s.committed))
	return ChangeTokens | ChangeFiltered | ChangeLoading | ChangeMessage | ChangeImages | ChangeHover
}

func (s *State) applySearchApplied(ev SearchApplied) Change {
	if ev.Seq != s.searchSeq || !s.searchPending {
		return ChangeNone
	}
	s.searchPending = false
	if s.fetchPending {
		// the list is being replaced; it is filtered when it arrives
		return ChangeLoading
	}
	s.filtered = search.Filter(s.tokens, s.committed)
	s.message = s.statusMessage(search.Message(len(s.filtered), s.committed))
	return ChangeFiltered | ChangeLoading | ChangeMessage
}

// statusMessage keeps a failed category discovery visible until another
// message replaces it
func (s *State) statusMessage(message string) string {
	if message == "" && s.categoriesFailed {
		return MessageFailedCategories
	}
	return message
}

func (s *State) markImage(key string, failed bool) Change {
	if _, ok := s.keys[key]; !ok {
		return ChangeNone
	}
	_, wasLoaded := s.loaded[key]
	_, wasErrored := s.errored[key]
	if wasLoaded && (wasErrored || !failed) {
		return ChangeNone
	}
	s.loaded[key] = struct{}{}
	if failed {
		s.errored[key] = struct{}{}
	}
	return ChangeImages
}

func (s *State) resetIndex() {
	s.keys = make(map[string]int, len(s.tokens))
	for i, token := range s.tokens {
		key := token.Key()
		if _, dup := s.keys[key]; !dup {
			s.keys[key] = i
		}
	}
	s.loaded = make(map[string]struct{})
	s.errored = make(map[string]struct{})
	s.hovered = ""
}
