package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the search field to the quote fetcher and renders either a price
// chart or an error message in the content area. All UI strings are localized
// via Localization.
