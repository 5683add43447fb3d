package config

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/snapshot/internal/logo"
	"github.com/ytget/snapshot/internal/render"
	"github.com/ytget/snapshot/internal/session"
	"github.com/ytget/snapshot/internal/tokenlist"
)

// Settings keys for Fyne preferences
const (
	KeyTokensBaseURL       = "tokens_base_url"
	KeyCategoriesURL       = "categories_url"
	KeyDiscoverCategories  = "discover_categories"
	KeySearchDelayMS       = "search_delay_ms"
	KeyHTTPTimeoutSec      = "http_timeout_sec"
	KeyVirtualizeThreshold = "virtualize_threshold"
	KeyMaxParallelLogos    = "max_parallel_logos"
	KeyLanguage            = "app_language"
	KeyLastRoute           = "last_route"
)

// Default values
var (
	DefaultTokensBaseURL       = tokenlist.DefaultBaseURL
	DefaultCategoriesURL       = tokenlist.DefaultCategoriesURL
	DefaultDiscoverCategories  = false
	DefaultSearchDelayMS       = int(session.DefaultSearchDelay / time.Millisecond)
	DefaultHTTPTimeoutSec      = int(tokenlist.DefaultTimeout / time.Second)
	DefaultVirtualizeThreshold = render.DefaultThreshold
	DefaultMaxParallelLogos    = logo.DefaultMaxParallel
	DefaultLanguage            = "system"
)

// Bounds
const (
	MaxSearchDelayMS       = 5000
	MinHTTPTimeoutSec      = 1
	MaxHTTPTimeoutSec      = 300
	MaxVirtualizeThreshold = 100000
)

// Settings manages application configuration. Values set with Override
// shadow the stored preferences for the lifetime of the process.
type Settings struct {
	app fyne.App

	mu        sync.RWMutex
	overrides map[string]string
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app, overrides: make(map[string]string)}
}

// Override shadows key with value without persisting it
func (s *Settings) Override(key, value string) {
	s.mu.Lock()
	s.overrides[key] = value
	s.mu.Unlock()
}

// Overridden reports whether key is shadowed by an override
func (s *Settings) Overridden(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.overrides[key]
	return ok
}

func (s *Settings) override(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.overrides[key]
	return v, ok
}

func (s *Settings) clearOverride(key string) {
	s.mu.Lock()
	delete(s.overrides, key)
	s.mu.Unlock()
}

func (s *Settings) stringValue(key, fallback string) string {
	if v, ok := s.override(key); ok {
		return v
	}
	if v := s.app.Preferences().String(key); v != "" {
		return v
	}
	return fallback
}

func (s *Settings) intValue(key string, fallback int) int {
	if v, ok := s.override(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return s.app.Preferences().IntWithFallback(key, fallback)
}

func (s *Settings) boolValue(key string, fallback bool) bool {
	if v, ok := s.override(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return s.app.Preferences().BoolWithFallback(key, fallback)
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// GetTokensBaseURL returns the URL the category files are fetched from
func (s *Settings) GetTokensBaseURL() string {
	return strings.TrimRight(s.stringValue(KeyTokensBaseURL, DefaultTokensBaseURL), "/")
}

// SetTokensBaseURL sets the token list base URL. An empty value restores the default.
func (s *Settings) SetTokensBaseURL(url string) {
	s.clearOverride(KeyTokensBaseURL)
	s.app.Preferences().SetString(KeyTokensBaseURL, strings.TrimSpace(url))
}

// GetCategoriesURL returns the directory listing URL used for discovery
func (s *Settings) GetCategoriesURL() string {
	return s.stringValue(KeyCategoriesURL, DefaultCategoriesURL)
}

// SetCategoriesURL sets the directory listing URL
func (s *Settings) SetCategoriesURL(url string) {
	s.clearOverride(KeyCategoriesURL)
	s.app.Preferences().SetString(KeyCategoriesURL, strings.TrimSpace(url))
}

// GetDiscoverCategories returns whether categories are read from the listing
func (s *Settings) GetDiscoverCategories() bool {
	return s.boolValue(KeyDiscoverCategories, DefaultDiscoverCategories)
}

// SetDiscoverCategories sets whether categories are read from the listing
func (s *Settings) SetDiscoverCategories(discover bool) {
	s.clearOverride(KeyDiscoverCategories)
	s.app.Preferences().SetBool(KeyDiscoverCategories, discover)
}

// GetSearchDelay returns the pause before a search result is shown
func (s *Settings) GetSearchDelay() time.Duration {
	ms := clamp(s.intValue(KeySearchDelayMS, DefaultSearchDelayMS), 0, MaxSearchDelayMS)
	return time.Duration(ms) * time.Millisecond
}

// SetSearchDelay sets the search delay, clamped to [0, MaxSearchDelayMS] ms
func (s *Settings) SetSearchDelay(delay time.Duration) {
	s.clearOverride(KeySearchDelayMS)
	ms := clamp(int(delay/time.Millisecond), 0, MaxSearchDelayMS)
	s.app.Preferences().SetInt(KeySearchDelayMS, ms)
}

// GetHTTPTimeout returns the timeout for token list requests
func (s *Settings) GetHTTPTimeout() time.Duration {
	sec := clamp(s.intValue(KeyHTTPTimeoutSec, DefaultHTTPTimeoutSec), MinHTTPTimeoutSec, MaxHTTPTimeoutSec)
	return time.Duration(sec) * time.Second
}

// SetHTTPTimeout sets the request timeout
func (s *Settings) SetHTTPTimeout(timeout time.Duration) {
	s.clearOverride(KeyHTTPTimeoutSec)
	sec := clamp(int(timeout/time.Second), MinHTTPTimeoutSec, MaxHTTPTimeoutSec)
	s.app.Preferences().SetInt(KeyHTTPTimeoutSec, sec)
}

// GetVirtualizeThreshold returns the list size above which the grid is windowed
func (s *Settings) GetVirtualizeThreshold() int {
	return clamp(s.intValue(KeyVirtualizeThreshold, DefaultVirtualizeThreshold), 0, MaxVirtualizeThreshold)
}

// SetVirtualizeThreshold sets the windowing threshold
func (s *Settings) SetVirtualizeThreshold(threshold int) {
	s.clearOverride(KeyVirtualizeThreshold)
	s.app.Preferences().SetInt(KeyVirtualizeThreshold, clamp(threshold, 0, MaxVirtualizeThreshold))
}

// GetMaxParallelLogos returns the maximum number of concurrent logo fetches
func (s *Settings) GetMaxParallelLogos() int {
	return clamp(s.intValue(KeyMaxParallelLogos, DefaultMaxParallelLogos), 1, logo.MaxParallelLimit)
}

// SetMaxParallelLogos sets the maximum number of concurrent logo fetches
func (s *Settings) SetMaxParallelLogos(count int) {
	s.clearOverride(KeyMaxParallelLogos)
	s.app.Preferences().SetInt(KeyMaxParallelLogos, clamp(count, 1, logo.MaxParallelLimit))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetLastRoute returns the route shown when the app was last closed
func (s *Settings) GetLastRoute() string {
	return s.app.Preferences().String(KeyLastRoute)
}

// SetLastRoute remembers the current route
func (s *Settings) SetLastRoute(route string) {
	s.app.Preferences().SetString(KeyLastRoute, route)
}

// TokenSourceOptions builds the token list client options
func (s *Settings) TokenSourceOptions() tokenlist.Options {
	return tokenlist.Options{
		BaseURL:       s.GetTokensBaseURL(),
		CategoriesURL: s.GetCategoriesURL(),
		Timeout:       s.GetHTTPTimeout(),
	}
}

// SessionOptions builds the session options
func (s *Settings) SessionOptions() session.Options {
	return session.Options{
		Categories:         tokenlist.DefaultCategories,
		DefaultCategory:    tokenlist.DefaultCategory,
		DiscoverCategories: s.GetDiscoverCategories(),
		SearchDelay:        s.GetSearchDelay(),
	}
}

// LogoOptions builds the logo loader options
func (s *Settings) LogoOptions() logo.Options {
	return logo.Options{
		MaxParallel: s.GetMaxParallelLogos(),
		Timeout:     s.GetHTTPTimeout(),
	}
}
