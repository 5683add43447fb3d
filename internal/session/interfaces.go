package session

import (
	"github.com/ytget/snapshot/internal/model"
	"github.com/ytget/snapshot/internal/state"
)

// Browser defines the interface the window drives.
type Browser interface {
	SetUpdateCallback(func(Update))
	SelectCategory(category string)
	SetSearchTerm(term string)
	SubmitSearch()

	// Navigate applies a route and reports whether it named a known category
	Navigate(path string) bool

	ImageLoaded(key string)
	ImageFailed(key string)
	HoverEnter(key string)
	HoverLeave(key string)
	Snapshot() state.Snapshot
	ImageStatus(key string) model.ImageStatus
}

var _ Browser = (*Session)(nil)
