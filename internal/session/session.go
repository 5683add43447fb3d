package session

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ytget/snapshot/internal/model"
	"github.com/ytget/snapshot/internal/route"
	"github.com/ytget/snapshot/internal/state"
	"github.com/ytget/snapshot/internal/tokenlist"
)

// DefaultSearchDelay is the cosmetic pause before a search result is committed
const DefaultSearchDelay = 300 * time.Millisecond

// Options configures a Session
type Options struct {
	Categories         []string
	DefaultCategory    string
	DiscoverCategories bool
	SearchDelay        time.Duration
}

// Update is delivered to the update callback after every change
type Update struct {
	Version  uint64
	Change   state.Change
	Snapshot state.Snapshot
}

// Session owns the view state and the asynchronous work that feeds it
type Session struct {
	source tokenlist.Source
	opts   Options

	mu          sync.Mutex
	st          *state.State
	version     uint64
	fetchSeq    uint64
	searchSeq   uint64
	cancelFetch context.CancelFunc
	ctx         context.Context
	cancel      context.CancelFunc
	onUpdate    func(Update)

	wg sync.WaitGroup
}

// New creates a session over source. The state starts in the default
// category with the loading indicator on; call Start to issue the first fetch.
func New(source tokenlist.Source, opts Options) *Session {
	if len(opts.Categories) == 0 {
		opts.Categories = tokenlist.DefaultCategories
	}
	if opts.DefaultCategory == "" {
		opts.DefaultCategory = opts.Categories[0]
	}
	if opts.SearchDelay < 0 {
		opts.SearchDelay = 0
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		source: source,
		opts:   opts,
		st:     state.New(opts.Categories, opts.DefaultCategory),
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetUpdateCallback sets the callback function for state updates.
// The callback runs on the goroutine that caused the change and may be
// called concurrently; Update.Version orders deliveries.
func (s *Session) SetUpdateCallback(callback func(Update)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// Start discovers categories if enabled, then applies initialRoute. A route
// naming an unknown category is ignored and the default category is shown.
func (s *Session) Start(initialRoute string) {
	if !s.opts.DiscoverCategories {
		s.navigateInitial(initialRoute)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		categories, err := s.source.FetchCategories(s.ctx)
		if err != nil {
			log.Warn("category discovery failed, keeping defaults", "err", err)
		} else {
			log.Info("categories discovered", "count", len(categories))
		}
		s.apply(state.CategoriesLoaded{Categories: categories, Err: err})

		if s.ctx.Err() != nil {
			return
		}
		s.navigateInitial(initialRoute)
	}()
}

func (s *Session) navigateInitial(path string) {
	s.mu.Lock()
	known := s.st.Categories()
	fallback := s.st.DefaultCategory()
	s.mu.Unlock()

	r, ok := route.Parse(path, known)
	if !ok {
		if path != "" {
			log.Info("initial route ignored", "route", path)
		}
		s.SelectCategory(fallback)
		return
	}

	s.SelectCategory(r.Category)
	if r.Term != "" {
		s.SetSearchTerm(r.Term)
		s.SubmitSearch()
	}
}

// Navigate applies a route typed by the user. It returns false when the
// route does not name a known category; the state is left untouched then.
func (s *Session) Navigate(path string) bool {
	s.mu.Lock()
	known := s.st.Categories()
	current := s.st.Category()
	failed := s.st.Message() == state.MessageFailedTokens
	s.mu.Unlock()

	r, ok := route.Parse(path, known)
	if !ok {
		log.Info("route not recognised", "route", path)
		return false
	}

	if r.Category != current || failed {
		s.SelectCategory(r.Category)
	}
	s.SetSearchTerm(r.Term)
	s.SubmitSearch()
	return true
}

// SelectCategory switches category, resets the search term and fetches the list
func (s *Session) SelectCategory(category string) {
	s.mu.Lock()
	if s.cancelFetch != nil {
		s.cancelFetch()
	}
	s.fetchSeq++
	seq := s.fetchSeq
	ctx, cancel := context.WithCancel(s.ctx)
	s.cancelFetch = cancel
	update := s.applyLocked(state.CategorySelected{Category: category, Seq: seq})
	category = s.st.Category()
	s.mu.Unlock()

	s.notify(update)
	log.Info("category selected", "category", category, "seq", seq)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		s.fetchTokens(ctx, seq, category)
	}()
}

func (s *Session) fetchTokens(ctx context.Context, seq uint64, category string) {
	started := time.Now()
	tokens, err := s.source.FetchTokens(ctx, category)

	s.mu.Lock()
	superseded := seq != s.fetchSeq
	s.mu.Unlock()

	switch {
	case superseded:
		log.Debug("discarding superseded token list", "category", category, "seq", seq)
		return
	case err != nil:
		log.Error("failed to load tokens", "category", category, "err", err)
	default:
		log.Info("tokens loaded", "category", category, "count", len(tokens), "elapsed", time.Since(started))
	}

	s.apply(state.TokensLoaded{Seq: seq, Tokens: tokens, Err: err})
}

// SetSearchTerm updates the search field text without filtering
func (s *Session) SetSearchTerm(term string) {
	s.apply(state.SearchTermChanged{Term: term})
}

// SubmitSearch filters the current list by the search term after the
// configured delay. A later submission or category change supersedes it.
func (s *Session) SubmitSearch() {
	s.mu.Lock()
	s.searchSeq++
	seq := s.searchSeq
	update := s.applyLocked(state.SearchSubmitted{Seq: seq})
	term := s.st.Term()
	s.mu.Unlock()

	s.notify(update)
	log.Debug("search submitted", "term", term, "seq", seq)

	if s.opts.SearchDelay <= 0 {
		s.apply(state.SearchApplied{Seq: seq})
		return
	}

	s.wg.Add(1)
	time.AfterFunc(s.opts.SearchDelay, func() {
		defer s.wg.Done()
		if s.ctx.Err() != nil {
			return
		}
		s.apply(state.SearchApplied{Seq: seq})
	})
}

// ImageLoaded records a successfully decoded logo
func (s *Session) ImageLoaded(key string) {
	s.apply(state.ImageLoaded{Key: key})
}

// ImageFailed records a logo that fell back to the placeholder
func (s *Session) ImageFailed(key string) {
	s.apply(state.ImageFailed{Key: key})
}

// HoverEnter makes key the hovered token
func (s *Session) HoverEnter(key string) {
	s.apply(state.HoverEntered{Key: key})
}

// HoverLeave clears the hovered token if it is key
func (s *Session) HoverLeave(key string) {
	s.apply(state.HoverLeft{Key: key})
}

// Snapshot returns a copy of the current state
func (s *Session) Snapshot() state.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.Snapshot()
}

// ImageStatus returns the logo status for key
func (s *Session) ImageStatus(key string) model.ImageStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.ImageStatus(key)
}

// HoveredKey returns the key of the hovered token or ""
func (s *Session) HoveredKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.HoveredKey()
}

// Wait blocks until all in-flight fetches and delayed searches have finished
func (s *Session) Wait() {
	s.wg.Wait()
}

// Close cancels in-flight work; pending results are dropped
func (s *Session) Close() {
	s.cancel()
}

// apply runs one transition and notifies when something changed
func (s *Session) apply(e state.Event) {
	s.mu.Lock()
	update := s.applyLocked(e)
	s.mu.Unlock()

	s.notify(update)
}

func (s *Session) applyLocked(e state.Event) *Update {
	change := s.st.Apply(e)
	if change == state.ChangeNone {
		return nil
	}
	s.version++
	return &Update{
		Version:  s.version,
		Change:   change,
		Snapshot: s.st.Snapshot(),
	}
}

// notify calls the update callback if set
func (s *Session) notify(update *Update) {
	if update == nil {
		return
	}
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(*update)
	}
}
