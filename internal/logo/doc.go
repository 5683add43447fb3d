package logo

// Package logo fetches token logos with a bounded number of parallel
// requests. Each URL is fetched once per session; the decoded resource or the
// failure is remembered and reported to the UI through the update callback.
