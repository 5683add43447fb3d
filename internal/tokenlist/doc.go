package tokenlist

// Package tokenlist implements the client for the public token list
// repository: one JSON array of tokens per category at {base}/{category}.json,
// and a directory listing from which the category names are discovered.
// Every call is a single attempt; failures are reported as *FetchError.
