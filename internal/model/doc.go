package model

// Package model defines domain data structures used across the app: quote
// requests, price series, fetched quotes and the fetch state enum. Structures
// are plain values so the UI can render them without further conversion.
