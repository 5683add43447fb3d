package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It renders the address bar, search field, category buttons and the token
// grid, and forwards every user action to the session. All UI strings are
// localized via Localization.
