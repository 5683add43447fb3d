package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ytget/snapshot/internal/model"
	"github.com/ytget/snapshot/internal/state"
	"github.com/ytget/snapshot/internal/tokenlist"
)

// fakeSource serves canned lists. A category with a gate blocks until the
// gate is closed, which lets tests control completion order.
type fakeSource struct {
	mu         sync.Mutex
	lists      map[string][]model.Token
	gates      map[string]chan struct{}
	categories []string
	catErr     error
	calls      []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		lists: map[string][]model.Token{
			"Ethereum": {
				{Symbol: "WETH", Name: "Wrapped Ether", Address: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", ChainID: 1, Decimals: 18},
				{Symbol: "USDC", Name: "USD Coin", Address: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", ChainID: 1, Decimals: 6},
			},
			"Arbitrum": {
				{Symbol: "USDC", Name: "USD Coin", Address: "0xaf88d065e77c8cC2239327C5EDb3A432268e5831", ChainID: 42161, Decimals: 6},
				{Symbol: "ARB", Name: "Arbitrum", Address: "0x912CE59144191C1204E64559FE8253a0e49E6548", ChainID: 42161, Decimals: 18},
			},
		},
		gates: make(map[string]chan struct{}),
	}
}

func (f *fakeSource) gate(category string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.gates[category] = ch
	return ch
}

func (f *fakeSource) FetchTokens(ctx context.Context, category string) ([]model.Token, error) {
	f.mu.Lock()
	f.calls = append(f.calls, category)
	gate := f.gates[category]
	tokens, ok := f.lists[category]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if !ok {
		return nil, &tokenlist.FetchError{Op: tokenlist.OpTokens, Category: category, Err: errors.New("not found")}
	}
	return tokens, nil
}

func (f *fakeSource) FetchCategories(ctx context.Context) ([]string, error) {
	if f.catErr != nil {
		return nil, &tokenlist.FetchError{Op: tokenlist.OpCategories, Err: f.catErr}
	}
	return f.categories, nil
}

func newTestSession(source tokenlist.Source) *Session {
	return New(source, Options{
		Categories:      []string{"Ethereum", "Arbitrum", "Optimism", "Bsc"},
		DefaultCategory: "Ethereum",
	})
}

func TestNew_Defaults(t *testing.T) {
	s := New(newFakeSource(), Options{SearchDelay: -time.Second})

	if s.opts.DefaultCategory != tokenlist.DefaultCategories[0] {
		t.Errorf("expected default category %s, got %s", tokenlist.DefaultCategories[0], s.opts.DefaultCategory)
	}
	if s.opts.SearchDelay != 0 {
		t.Errorf("negative delay should clamp to 0, got %v", s.opts.SearchDelay)
	}
	if !s.Snapshot().Status.IsLoading() {
		t.Error("a new session shows the loading indicator")
	}
}

func TestStart_DefaultRoute(t *testing.T) {
	s := newTestSession(newFakeSource())
	s.Start("")
	s.Wait()

	snap := s.Snapshot()
	if snap.Category != "Ethereum" || len(snap.Filtered) != 2 {
		t.Errorf("unexpected state %s %d", snap.Category, len(snap.Filtered))
	}
	if snap.Status != model.LoadStatusIdle {
		t.Errorf("expected Idle, got %s", snap.Status)
	}
	if snap.Route != "/Ethereum/" {
		t.Errorf("unexpected route %s", snap.Route)
	}
}

func TestStart_RouteWithTerm(t *testing.T) {
	s := newTestSession(newFakeSource())
	s.Start("/Arbitrum/usdc")
	s.Wait()

	snap := s.Snapshot()
	if snap.Category != "Arbitrum" || snap.Term != "usdc" {
		t.Fatalf("expected Arbitrum/usdc, got %s/%s", snap.Category, snap.Term)
	}
	if len(snap.Filtered) != 1 || snap.Filtered[0].Symbol != "USDC" {
		t.Errorf("expected only USDC, got %v", snap.Filtered)
	}
	if snap.Route != "/Arbitrum/usdc" {
		t.Errorf("unexpected route %s", snap.Route)
	}
}

func TestStart_UnknownCategoryFallsBack(t *testing.T) {
	s := newTestSession(newFakeSource())
	s.Start("/Solana/usdc")
	s.Wait()

	snap := s.Snapshot()
	if snap.Category != "Ethereum" || snap.Term != "" {
		t.Errorf("expected defaults, got %s/%q", snap.Category, snap.Term)
	}
}

func TestStart_DiscoversCategories(t *testing.T) {
	source := newFakeSource()
	source.categories = []string{"Arbitrum", "Base", "Ethereum"}

	s := New(source, Options{DiscoverCategories: true, DefaultCategory: "Ethereum"})
	s.Start("/Base")
	s.Wait()

	snap := s.Snapshot()
	if len(snap.Categories) != 3 {
		t.Errorf("expected discovered categories, got %v", snap.Categories)
	}
	if snap.Category != "Base" {
		t.Errorf("expected Base to be accepted after discovery, got %s", snap.Category)
	}
	// Base has no list in the fake source
	if snap.Message != state.MessageFailedTokens {
		t.Errorf("expected %q, got %q", state.MessageFailedTokens, snap.Message)
	}
}

func TestStart_DiscoveryFailureKeepsDefaults(t *testing.T) {
	source := newFakeSource()
	source.catErr = errors.New("rate limited")

	s := New(source, Options{DiscoverCategories: true})
	s.Start("/Arbitrum")
	s.Wait()

	snap := s.Snapshot()
	if snap.Category != "Arbitrum" {
		t.Errorf("fixed categories should still route, got %s", snap.Category)
	}
	if len(snap.Categories) != len(tokenlist.DefaultCategories) {
		t.Errorf("expected default categories, got %v", snap.Categories)
	}
	if snap.Message != state.MessageFailedCategories {
		t.Errorf("expected %q, got %q", state.MessageFailedCategories, snap.Message)
	}
}

func TestSetSearchTerm_DoesNotFilterArrivingList(t *testing.T) {
	source := newFakeSource()
	slow := source.gate("Ethereum")

	s := newTestSession(source)
	s.SelectCategory("Ethereum")
	s.SetSearchTerm("xyz")
	close(slow)
	s.Wait()

	snap := s.Snapshot()
	if len(snap.Filtered) != len(snap.Tokens) || len(snap.Tokens) != 2 {
		t.Errorf("unsubmitted term filtered the list: full=%d filtered=%d", len(snap.Tokens), len(snap.Filtered))
	}
	if snap.Message != "" {
		t.Errorf("expected empty message, got %q", snap.Message)
	}
}

func TestSelectCategory_FailureSetsMessage(t *testing.T) {
	s := newTestSession(newFakeSource())
	s.SelectCategory("Optimism")
	s.Wait()

	snap := s.Snapshot()
	if snap.Message != "Failed to load tokens" {
		t.Errorf("expected failure message, got %q", snap.Message)
	}
	if snap.Status.IsLoading() {
		t.Error("loading should clear after failure")
	}
	if len(snap.Filtered) != 0 {
		t.Error("failure should leave an empty list")
	}
}

func TestSelectCategory_LastIssuedWins(t *testing.T) {
	source := newFakeSource()
	slow := source.gate("Ethereum")

	s := newTestSession(source)
	s.SelectCategory("Ethereum")
	s.SelectCategory("Arbitrum")

	// let the Arbitrum fetch finish first, then release the older Ethereum fetch
	deadline := time.Now().Add(2 * time.Second)
	for s.Snapshot().Status.IsLoading() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	close(slow)
	s.Wait()

	snap := s.Snapshot()
	if snap.Category != "Arbitrum" {
		t.Fatalf("expected Arbitrum, got %s", snap.Category)
	}
	if len(snap.Tokens) != 2 || snap.Tokens[1].Symbol != "ARB" {
		t.Errorf("superseded Ethereum list overwrote the Arbitrum list: %v", snap.Tokens)
	}
}

func TestSubmitSearch_Delayed(t *testing.T) {
	s := New(newFakeSource(), Options{SearchDelay: 20 * time.Millisecond})
	s.SelectCategory("Ethereum")
	s.Wait()

	s.SetSearchTerm("wrapped")
	s.SubmitSearch()
	if !s.Snapshot().Status.IsLoading() {
		t.Error("search should be loading until the delay passes")
	}
	s.Wait()

	snap := s.Snapshot()
	if snap.Status.IsLoading() {
		t.Error("search should finish after the delay")
	}
	if len(snap.Filtered) != 1 || snap.Filtered[0].Symbol != "WETH" {
		t.Errorf("expected WETH, got %v", snap.Filtered)
	}

	s.SetSearchTerm("xyz")
	s.SubmitSearch()
	s.Wait()
	if msg := s.Snapshot().Message; msg != "No Tokens Found" {
		t.Errorf("expected no results message, got %q", msg)
	}
}

func TestNavigate(t *testing.T) {
	s := newTestSession(newFakeSource())
	s.Start("")
	s.Wait()

	if s.Navigate("/Atlantis/usdc") {
		t.Error("unknown category should be rejected")
	}
	if s.Snapshot().Category != "Ethereum" {
		t.Error("rejected route must not change state")
	}

	if !s.Navigate("/ethereum/usd") {
		t.Fatal("known category should be accepted")
	}
	s.Wait()
	snap := s.Snapshot()
	if snap.Term != "usd" || len(snap.Filtered) != 1 || snap.Filtered[0].Symbol != "USDC" {
		t.Errorf("unexpected result %q %v", snap.Term, snap.Filtered)
	}

	if !s.Navigate("/Arbitrum/arb") {
		t.Fatal("known category should be accepted")
	}
	s.Wait()
	snap = s.Snapshot()
	if snap.Category != "Arbitrum" || len(snap.Filtered) != 1 || snap.Filtered[0].Symbol != "ARB" {
		t.Errorf("unexpected result %s %v", snap.Category, snap.Filtered)
	}
}

func TestImageAndHoverEvents(t *testing.T) {
	source := newFakeSource()
	s := newTestSession(source)
	s.Start("")
	s.Wait()

	weth := source.lists["Ethereum"][0]
	usdc := source.lists["Ethereum"][1]

	s.ImageLoaded(weth.Key())
	s.ImageFailed(usdc.Key())
	if s.ImageStatus(weth.Key()) != model.ImageStatusLoaded {
		t.Errorf("expected Loaded, got %s", s.ImageStatus(weth.Key()))
	}
	if s.ImageStatus(usdc.Key()) != model.ImageStatusFailed {
		t.Errorf("expected Failed, got %s", s.ImageStatus(usdc.Key()))
	}

	s.HoverEnter(usdc.Key())
	if s.HoveredKey() != usdc.Key() {
		t.Errorf("expected %s hovered, got %s", usdc.Key(), s.HoveredKey())
	}
	s.HoverLeave(usdc.Key())
	if s.HoveredKey() != "" {
		t.Error("hover should clear")
	}

	s.SelectCategory("Arbitrum")
	if s.ImageStatus(weth.Key()) != model.ImageStatusPending {
		t.Error("image state should reset on category change")
	}
	s.Wait()
}

func TestUpdateCallback_VersionsIncrease(t *testing.T) {
	s := newTestSession(newFakeSource())

	var mu sync.Mutex
	var versions []uint64
	s.SetUpdateCallback(func(u Update) {
		mu.Lock()
		versions = append(versions, u.Version)
		mu.Unlock()
	})

	s.Start("/Ethereum/weth")
	s.Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(versions) == 0 {
		t.Fatal("expected updates")
	}
	seen := make(map[uint64]bool)
	for _, v := range versions {
		if v == 0 || seen[v] {
			t.Errorf("versions must be unique and non-zero: %v", versions)
			break
		}
		seen[v] = true
	}
}

func TestClose_DropsPendingSearch(t *testing.T) {
	s := New(newFakeSource(), Options{SearchDelay: 20 * time.Millisecond})
	s.SelectCategory("Ethereum")
	s.Wait()

	s.SetSearchTerm("xyz")
	s.SubmitSearch()
	s.Close()
	s.Wait()

	snap := s.Snapshot()
	if snap.Message != "" || len(snap.Filtered) != 2 {
		t.Errorf("closed session should not commit the search, got %q %d", snap.Message, len(snap.Filtered))
	}
}
