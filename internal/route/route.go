// Package route maps the browsing state to and from a shareable
// "/{category}/{searchTerm}" path.
package route

import (
	"net/url"
	"strings"
)

// Separator splits path segments
const Separator = "/"

// Route is the parsed form of a path
type Route struct {
	Category string
	Term     string
}

// Parse splits path into category and search term. Empty segments are
// dropped and the remaining segments after the category are joined with a
// space. ok is false when the path has no category or the category is not
// in known; callers then fall back to their defaults for both values.
// The returned category uses the spelling found in known.
func Parse(path string, known []string) (Route, bool) {
	segments := Segments(path)
	if len(segments) == 0 {
		return Route{}, false
	}

	category, found := Lookup(segments[0], known)
	if !found {
		return Route{}, false
	}

	return Route{
		Category: category,
		Term:     strings.Join(segments[1:], " "),
	}, true
}

// Segments returns the unescaped, non-empty segments of path
func Segments(path string) []string {
	path = strings.TrimSpace(path)
	if u, err := url.Parse(path); err == nil && u.Scheme != "" {
		path = u.EscapedPath()
	}

	var segments []string
	for _, part := range strings.Split(path, Separator) {
		if part == "" {
			continue
		}
		if unescaped, err := url.PathUnescape(part); err == nil {
			part = unescaped
		}
		if strings.TrimSpace(part) == "" {
			continue
		}
		segments = append(segments, part)
	}
	return segments
}

// Lookup finds category in known ignoring case
func Lookup(category string, known []string) (string, bool) {
	for _, k := range known {
		if strings.EqualFold(k, category) {
			return k, true
		}
	}
	return "", false
}

// Format builds "/{category}/{term}". An empty category becomes
// fallbackCategory; the term may be empty, which leaves a trailing slash.
func Format(category, term, fallbackCategory string) string {
	if category == "" {
		category = fallbackCategory
	}
	return Separator + url.PathEscape(category) + Separator + url.PathEscape(term)
}

// String formats the route with no fallback category
func (r Route) String() string {
	return Format(r.Category, r.Term, "")
}
