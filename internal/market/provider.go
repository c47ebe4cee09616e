// Package market defines the contract between the quote fetcher and the remote
// market-data services it talks to. Concrete providers live in subpackages.
package market

import (
	"context"
	"errors"
	"time"
)

// ErrNoData is returned by providers when the symbol is unknown or the
// requested range holds no samples.
var ErrNoData = errors.New("no data")

// Bar is a single close-price sample.
type Bar struct {
	Time  time.Time // sample time in the exchange's local zone
	Close float64
}

// Provider describes a market-data service.
//
//go:generate mockgen -package=mocks -destination=mocks/mock_provider.go -source=provider.go Provider
type Provider interface {
	// Name returns a short identifier used in logs.
	Name() string
	// DailyCloses returns one bar per trading day in [from, to], oldest first.
	DailyCloses(ctx context.Context, ticker string, from, to time.Time) ([]Bar, error)
	// IntradayCloses returns the 1-minute bars of the latest session, oldest first.
	IntradayCloses(ctx context.Context, ticker string) ([]Bar, error)
}

// Last returns the most recent bar and whether there is one.
func Last(bars []Bar) (Bar, bool) {
	if len(bars) == 0 {
		return Bar{}, false
	}
	return bars[len(bars)-1], true
}

// ExchangeLocation returns the exchange's zone by name, falling back to the
// fixed UTC offset (seconds) when the name is empty or not in the tz database.
func ExchangeLocation(name string, offset int) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	return time.FixedZone(name, offset)
}
