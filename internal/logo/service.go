package logo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"github.com/charmbracelet/log"
	_ "golang.org/x/image/webp"

	"github.com/ytget/snapshot/internal/tokenlist"
)

// Limits
const (
	DefaultMaxParallel = 6
	MaxParallelLimit   = 32
	DefaultTimeout     = 15 * time.Second
	MaxLogoBytes       = 2 << 20
	sniffLen           = 512
)

// Logo errors
var (
	ErrNoURL       = errors.New("logo has no url")
	ErrEmptyBody   = errors.New("logo response is empty")
	ErrTooLarge    = errors.New("logo exceeds size limit")
	ErrUnsupported = errors.New("logo format not supported")
)

// Options configures the Service
type Options struct {
	MaxParallel int
	Timeout     time.Duration
	UserAgent   string
	HTTPClient  *http.Client
}

type entryState int

const (
	entryQueued entryState = iota
	entryFetching
	entryDone
)

type entry struct {
	state  entryState
	result Result
}

// Service loads logos
type Service struct {
	entries     map[string]*entry
	queue       []string
	mutex       sync.Mutex
	maxParallel int
	activeCount int
	userAgent   string
	httpClient  *http.Client
	onUpdate    func(url string, res fyne.Resource, err error)

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewService creates a new logo loader
func NewService(opts Options) *Service {
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	if opts.UserAgent == "" {
		opts.UserAgent = tokenlist.DefaultUserAgent
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		entries:     make(map[string]*entry),
		maxParallel: clampParallel(opts.MaxParallel),
		userAgent:   opts.UserAgent,
		httpClient:  client,
		ctx:         ctx,
		cancel:      cancel,
	}
}

func clampParallel(max int) int {
	if max <= 0 {
		return DefaultMaxParallel
	}
	if max > MaxParallelLimit {
		return MaxParallelLimit
	}
	return max
}

// SetUpdateCallback sets the callback function for settled logos
func (s *Service) SetUpdateCallback(callback func(url string, res fyne.Resource, err error)) {
	s.mutex.Lock()
	s.onUpdate = callback
	s.mutex.Unlock()
}

// SetMaxParallel sets the maximum number of concurrent fetches
func (s *Service) SetMaxParallel(max int) {
	s.mutex.Lock()
	s.maxParallel = clampParallel(max)
	s.startQueuedLocked()
	s.mutex.Unlock()
}

// Request schedules a fetch of logoURL. A URL that already settled is not
// fetched again; its result is delivered to the callback once more so a new
// list showing the same logo can record it. Callbacks never run on the
// calling goroutine.
func (s *Service) Request(logoURL string) {
	logoURL = strings.TrimSpace(logoURL)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if e, exists := s.entries[logoURL]; exists {
		if e.state == entryDone {
			s.deliverLocked(logoURL, e.result)
		}
		return
	}

	if logoURL == "" {
		result := Result{Err: ErrNoURL}
		s.entries[logoURL] = &entry{state: entryDone, result: result}
		s.deliverLocked(logoURL, result)
		return
	}

	s.entries[logoURL] = &entry{state: entryQueued}
	s.queue = append(s.queue, logoURL)
	s.startQueuedLocked()
}

// deliverLocked hands a settled result to the callback on its own goroutine
func (s *Service) deliverLocked(logoURL string, result Result) {
	callback := s.onUpdate
	if callback == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		callback(logoURL, result.Resource, result.Err)
	}()
}

// Lookup returns the settled result for logoURL
func (s *Service) Lookup(logoURL string) (Result, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	e, exists := s.entries[strings.TrimSpace(logoURL)]
	if !exists || e.state != entryDone {
		return Result{}, false
	}
	return e.result, true
}

// DropQueued forgets requests that have not started yet, so logos of a list
// that is no longer shown do not hold up the new one.
func (s *Service) DropQueued() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	dropped := len(s.queue)
	for _, u := range s.queue {
		delete(s.entries, u)
	}
	s.queue = nil
	return dropped
}

// Pending returns the number of queued and running fetches
func (s *Service) Pending() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.queue) + s.activeCount
}

// Wait blocks until all running fetches have finished
func (s *Service) Wait() {
	s.wg.Wait()
}

// Close cancels running fetches and drops the queue
func (s *Service) Close() {
	s.DropQueued()
	s.cancel()
}

// startQueuedLocked starts queued fetches while we have capacity
func (s *Service) startQueuedLocked() {
	for s.activeCount < s.maxParallel && len(s.queue) > 0 {
		logoURL := s.queue[0]
		s.queue = s.queue[1:]

		e, exists := s.entries[logoURL]
		if !exists || e.state != entryQueued {
			continue
		}
		e.state = entryFetching
		s.activeCount++
		s.wg.Add(1)
		go s.run(logoURL)
	}
}

func (s *Service) run(logoURL string) {
	defer s.wg.Done()

	res, err := s.fetch(s.ctx, logoURL)
	if err != nil {
		log.Debug("logo failed", "url", logoURL, "err", err)
	}

	s.mutex.Lock()
	s.activeCount--
	if e, exists := s.entries[logoURL]; exists {
		e.state = entryDone
		e.result = Result{Resource: res, Err: err}
	}
	s.startQueuedLocked()
	callback := s.onUpdate
	s.mutex.Unlock()

	if callback != nil {
		callback(logoURL, res, err)
	}
}

// fetch downloads logoURL and checks that the body is an image we can show
func (s *Service) fetch(ctx context.Context, logoURL string) (fyne.Resource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, logoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("logo request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("logo get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &tokenlist.StatusError{URL: logoURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxLogoBytes+1))
	if err != nil {
		return nil, fmt.Errorf("logo read: %w", err)
	}
	return Decode(logoURL, resp.Header.Get("Content-Type"), body)
}

// Decode validates body and wraps it in a resource. Raster formats must decode
// their header; SVG is recognised by content type, extension or markup.
func Decode(logoURL, contentType string, body []byte) (fyne.Resource, error) {
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}
	if len(body) > MaxLogoBytes {
		return nil, ErrTooLarge
	}

	name, ext := resourceName(logoURL)
	if IsSVG(logoURL, contentType, body) {
		if !strings.EqualFold(ext, ".svg") {
			name += ".svg"
		}
		return fyne.NewStaticResource(name, body), nil
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	if ext == "" {
		name += "." + format
	}
	return fyne.NewStaticResource(name, body), nil
}

// IsSVG reports whether the response looks like an SVG document
func IsSVG(logoURL, contentType string, body []byte) bool {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil && mediaType == "image/svg+xml" {
		return true
	}
	if u, err := url.Parse(logoURL); err == nil && strings.EqualFold(path.Ext(u.Path), ".svg") {
		return true
	}
	head := body
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	return bytes.Contains(bytes.ToLower(head), []byte("<svg"))
}

// resourceName returns a name unique per logo URL and the extension of its
// path. Fyne caches rasterised SVGs by resource name.
func resourceName(logoURL string) (string, string) {
	u, err := url.Parse(strings.TrimSpace(logoURL))
	if err != nil || u.Host+u.Path == "" {
		return "logo", ""
	}
	name := u.Host + u.Path
	if u.RawQuery != "" {
		name += "?" + u.RawQuery
	}
	return name, path.Ext(u.Path)
}
