package tokenlist

import (
	"errors"
	"fmt"
)

// ErrFetch is matched by every error returned from a Source
var ErrFetch = errors.New("fetch failure")

// Operation names used in FetchError
const (
	OpTokens     = "tokens"
	OpCategories = "categories"
)

// FetchError describes a failed network call or an unreadable response
type FetchError struct {
	Op       string
	Category string
	Err      error
}

func (e *FetchError) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("fetch %s for %s: %v", e.Op, e.Category, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrFetch) true for any FetchError
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// StatusError is wrapped in a FetchError when the server answers with a non-2xx code
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}
