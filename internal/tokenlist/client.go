package tokenlist

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ytget/snapshot/internal/model"
)

// Default endpoints of the public token list repository
const (
	DefaultBaseURL       = "https://raw.githubusercontent.com/viaprotocol/tokenlists/main/tokenlists"
	DefaultCategoriesURL = "https://api.github.com/repos/viaprotocol/tokenlists/contents/tokenlists"
	DefaultTimeout       = 30 * time.Second
	DefaultUserAgent     = "snapshot-token-browser"
)

// File naming
const (
	ListExtension = ".json"
	RequestPrefix = "req-"
)

// DefaultCategories is the fixed category set used until discovery succeeds
var DefaultCategories = []string{"Ethereum", "Arbitrum", "Optimism", "Bsc"}

// DefaultCategory is selected when no route names a known category
const DefaultCategory = "Ethereum"

// Options configures HTTPSource
type Options struct {
	BaseURL       string
	CategoriesURL string
	Timeout       time.Duration
	UserAgent     string
	HTTPClient    *http.Client
}

// HTTPSource fetches token lists over HTTP
type HTTPSource struct {
	baseURL       string
	categoriesURL string
	userAgent     string
	httpClient    *http.Client
}

// DirectoryEntry is one element of the listing endpoint response
type DirectoryEntry struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// NewHTTPSource creates a new token list client
func NewHTTPSource(opts Options) *HTTPSource {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.CategoriesURL == "" {
		opts.CategoriesURL = DefaultCategoriesURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &HTTPSource{
		baseURL:       strings.TrimRight(opts.BaseURL, "/"),
		categoriesURL: opts.CategoriesURL,
		userAgent:     opts.UserAgent,
		httpClient:    client,
	}
}

// TokensURL returns the list URL for category
func (s *HTTPSource) TokensURL(category string) string {
	return fmt.Sprintf("%s/%s%s", s.baseURL, strings.ToLower(category), ListExtension)
}

// FetchTokens downloads and decodes the token list for category
func (s *HTTPSource) FetchTokens(ctx context.Context, category string) ([]model.Token, error) {
	var tokens []model.Token
	if err := s.getJSON(ctx, s.TokensURL(category), &tokens); err != nil {
		return nil, &FetchError{Op: OpTokens, Category: category, Err: err}
	}
	if tokens == nil {
		tokens = []model.Token{}
	}
	return tokens, nil
}

// FetchCategories reads the directory listing and returns the names of the
// ".json" entries with the extension stripped, in display form, sorted.
func (s *HTTPSource) FetchCategories(ctx context.Context) ([]string, error) {
	var entries []DirectoryEntry
	if err := s.getJSON(ctx, s.categoriesURL, &entries); err != nil {
		return nil, &FetchError{Op: OpCategories, Err: err}
	}
	return CategoriesFromListing(entries), nil
}

// CategoriesFromListing converts listing entries to category names
func CategoriesFromListing(entries []DirectoryEntry) []string {
	seen := make(map[string]bool)
	categories := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type != "" && entry.Type != "file" {
			continue
		}
		name := strings.TrimSpace(entry.Name)
		if !strings.HasSuffix(strings.ToLower(name), ListExtension) {
			continue
		}
		stem := name[:len(name)-len(ListExtension)]
		if stem == "" {
			continue
		}
		category := DisplayName(stem)
		if seen[strings.ToLower(category)] {
			continue
		}
		seen[strings.ToLower(category)] = true
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// DisplayName upper-cases the first letter of a list file stem, so
// "ethereum" becomes "Ethereum" and "bsc" becomes "Bsc"
func DisplayName(stem string) string {
	r, size := utf8.DecodeRuneInString(stem)
	if r == utf8.RuneError {
		return stem
	}
	return string(unicode.ToUpper(r)) + stem[size:]
}

// getJSON performs a single GET and decodes the body into out
func (s *HTTPSource) getJSON(ctx context.Context, url string, out any) error {
	requestID := newRequestID()
	started := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", s.userAgent)

	log.Debug("http get", "id", requestID, "url", url)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Warn("http get failed", "id", requestID, "url", url, "err", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		log.Warn("http get bad status", "id", requestID, "url", url, "status", resp.StatusCode)
		return &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Warn("decode failed", "id", requestID, "url", url, "err", err)
		return fmt.Errorf("decode %s: %w", url, err)
	}

	log.Debug("http get done", "id", requestID, "url", url, "elapsed", time.Since(started))
	return nil
}

// newRequestID generates an id used to correlate request log lines
func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return RequestPrefix + uuid.NewString()
	}
	return RequestPrefix + id.String()
}
