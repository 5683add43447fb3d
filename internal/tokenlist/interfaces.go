package tokenlist

import (
	"context"

	"github.com/ytget/snapshot/internal/model"
)

// Source defines the interface for token list retrieval.
type Source interface {
	// FetchTokens returns the token list published for category
	FetchTokens(ctx context.Context, category string) ([]model.Token, error)

	// FetchCategories returns the category names found in the directory listing
	FetchCategories(ctx context.Context) ([]string, error)
}
