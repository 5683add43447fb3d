package session

// Package session drives the browsing state: it issues token list fetches
// when the category changes, runs the delayed search commit, feeds image and
// hover events into the state, and reports every change through the update
// callback. Results of superseded fetches and searches are discarded.
