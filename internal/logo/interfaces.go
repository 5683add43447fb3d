package logo

import (
	"fyne.io/fyne/v2"
)

// Fetcher defines the interface for the logo loader.
type Fetcher interface {
	// SetUpdateCallback sets the function called when a logo settles
	SetUpdateCallback(func(url string, res fyne.Resource, err error))

	// Request schedules url unless it is already known
	Request(url string)

	// Lookup returns the settled result for url
	Lookup(url string) (Result, bool)

	// SetMaxParallel sets the maximum number of concurrent fetches
	SetMaxParallel(max int)

	// DropQueued forgets requests that have not started
	DropQueued() int
}

// Result is the settled outcome of one logo fetch
type Result struct {
	Resource fyne.Resource
	Err      error
}

var _ Fetcher = (*Service)(nil)
