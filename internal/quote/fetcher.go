// Package quote implements the quote fetcher: it pulls a daily close series and
// the latest intraday price for a ticker, widening the lookback window until
// enough trading days are returned or a cap is reached.
package quote

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/finance-dashboard/internal/market"
	"github.com/ytget/finance-dashboard/internal/model"
	"github.com/ytget/finance-dashboard/internal/price"
)

// Default fetch parameters
const (
	DefaultMinDays   = 5
	DefaultWidenSpan = 10
)

// Fetcher looks up quotes through a market.Provider
type Fetcher struct {
	provider  market.Provider
	minDays   int
	widenSpan int
	now       func() time.Time
	newID     func() string
}

// Option configures a Fetcher
type Option func(*Fetcher)

// WithMinDays sets the number of trading days a series should reach; it is
// also the initial lookback window
func WithMinDays(days int) Option {
	return func(f *Fetcher) {
		if days > 0 {
			f.minDays = days
		}
	}
}

// WithWidenSpan sets how many extra days the lookback may grow beyond MinDays
func WithWidenSpan(span int) Option {
	return func(f *Fetcher) {
		if span >= 0 {
			f.widenSpan = span
		}
	}
}

// WithClock overrides the time source used to compute the date range
func WithClock(now func() time.Time) Option {
	return func(f *Fetcher) {
		if now != nil {
			f.now = now
		}
	}
}

// NewFetcher creates a fetcher on top of the given provider
func NewFetcher(provider market.Provider, options ...Option) *Fetcher {
	f := &Fetcher{
		provider:  provider,
		minDays:   DefaultMinDays,
		widenSpan: DefaultWidenSpan,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, option := range options {
		option(f)
	}
	return f
}

// MinDays returns the configured minimum number of trading days
func (f *Fetcher) MinDays() int { return f.minDays }

// MaxLookback returns the widest lookback window a fetch may use
func (f *Fetcher) MaxLookback() int { return f.minDays + f.widenSpan }

// Fetch returns the rounded daily close series and latest price for ticker.
// Tickers are case-insensitive and normalized to upper case.
// Every call starts from the default lookback; nothing carries over between calls.
func (f *Fetcher) Fetch(ctx context.Context, ticker string) (*model.Quote, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, ErrEmptyTicker
	}

	req := model.QuoteRequest{
		ID:          f.newID(),
		Ticker:      ticker,
		Lookback:    f.minDays,
		SubmittedAt: f.now(),
	}
	log.Printf("Quote request %s: ticker=%s provider=%s lookback=%d", req.ID, req.Ticker, f.provider.Name(), req.Lookback)

	bars, lookback, err := f.fetchDaily(ctx, req.Ticker, req.Lookback)
	if err != nil {
		return nil, f.fail(req, err)
	}

	series := make(model.PriceSeries, 0, len(bars))
	for _, b := range bars {
		series = append(series, model.PricePoint{
			Date:  b.Time.Format(model.DateLayout),
			Close: price.Round(b.Close),
		})
	}

	intraday, err := f.provider.IntradayCloses(ctx, req.Ticker)
	if err != nil {
		return nil, f.fail(req, err)
	}
	last, ok := market.Last(intraday)
	if !ok {
		return nil, f.fail(req, fmt.Errorf("no intraday samples: %w", market.ErrNoData))
	}

	q := &model.Quote{
		RequestID: req.ID,
		Ticker:    req.Ticker,
		Prices:    series,
		Latest:    price.Round(last.Close),
		Lookback:  lookback,
		FetchedAt: f.now(),
	}
	// Nothing to chart without a first price
	if !q.HasData() {
		return nil, f.fail(req, fmt.Errorf("empty series after %d days: %w", lookback, market.ErrNoData))
	}

	log.Printf("Quote request %s resolved: %d points, latest=%s, lookback=%d",
		req.ID, len(q.Prices), price.Format(q.Latest), q.Lookback)
	return q, nil
}

// fetchDaily requests the daily series, widening the window one day at a time
// while fewer than minDays trading days come back. The row count is compared
// with minDays, not with the widened window, and widening stops at MaxLookback.
func (f *Fetcher) fetchDaily(ctx context.Context, ticker string, lookback int) ([]market.Bar, int, error) {
	for {
		today := f.now()
		from := today.AddDate(0, 0, -lookback)

		bars, err := f.provider.DailyCloses(ctx, ticker, from, today)
		if err != nil {
			return nil, lookback, err
		}

		if len(bars) < f.minDays && lookback < f.MaxLookback() {
			log.Printf("Only %d trading days for %s over %d days, widening lookback", len(bars), ticker, lookback)
			lookback++
			continue
		}
		return bars, lookback, nil
	}
}

// fail wraps a provider error into a FetchError and logs the raw error
func (f *Fetcher) fail(req model.QuoteRequest, err error) error {
	kind := KindTransport
	if errors.Is(err, market.ErrNoData) {
		kind = KindNoData
	}
	fe := &FetchError{RequestID: req.ID, Ticker: req.Ticker, Kind: kind, Err: err}
	log.Printf("Quote request %s failed: %v", req.ID, err)
	return fe
}
