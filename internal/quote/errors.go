package quote

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two failure kinds. The UI shows one message for
// both; they are kept apart for logs and tests.
var (
	ErrNoData      = errors.New("no price data")
	ErrTransport   = errors.New("provider request failed")
	ErrEmptyTicker = errors.New("empty ticker")
)

// ErrorKind classifies a FetchError
type ErrorKind string

const (
	// KindNoData covers unknown tickers and empty result sets
	KindNoData ErrorKind = "no-data"
	// KindTransport covers network failures and any other provider error
	KindTransport ErrorKind = "transport"
)

// FetchError is returned by Fetcher.Fetch for every failed lookup
type FetchError struct {
	RequestID string
	Ticker    string
	Kind      ErrorKind
	Err       error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s (%s): %s: %v", e.Ticker, e.RequestID, e.Kind, e.Err)
}

// Unwrap returns the underlying provider error
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the kind sentinels
func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrNoData:
		return e.Kind == KindNoData
	case ErrTransport:
		return e.Kind == KindTransport
	}
	return false
}
