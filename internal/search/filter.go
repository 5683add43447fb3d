// Package search filters token lists by a free-text term.
package search

import (
	"strings"

	"github.com/ytget/snapshot/internal/model"
)

// NoResultsMessage is reported when a non-empty term matches nothing
const NoResultsMessage = "No Tokens Found"

// Normalize trims the term. An all-whitespace term is treated as empty.
func Normalize(term string) string {
	return strings.TrimSpace(term)
}

// Filter returns the tokens whose symbol, name or address contains term,
// ignoring case. Order is preserved. An empty term returns tokens as is.
func Filter(tokens []model.Token, term string) []model.Token {
	term = Normalize(term)
	if term == "" {
		return tokens
	}

	needle := strings.ToLower(term)
	result := make([]model.Token, 0)
	for _, token := range tokens {
		if Matches(token, needle) {
			result = append(result, token)
		}
	}
	return result
}

// Matches reports whether a lower-cased needle occurs in any searchable field
func Matches(token model.Token, needle string) bool {
	return strings.Contains(strings.ToLower(token.Symbol), needle) ||
		strings.Contains(strings.ToLower(token.Name), needle) ||
		strings.Contains(strings.ToLower(token.Address), needle)
}

// Message returns the status message for a committed search
func Message(resultCount int, term string) string {
	if resultCount == 0 && Normalize(term) != "" {
		return NoResultsMessage
	}
	return ""
}
