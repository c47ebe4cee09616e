// Package financego adapts github.com/piquette/finance-go chart iterators to
// market.Provider. It talks to the same Yahoo backend as package yahoo but
// through the community client, and is selectable from config.
package financego

import (
	"context"
	"fmt"
	"strings"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"

	"github.com/ytget/finance-dashboard/internal/market"
)

// IntradayWindow is how far back intraday bars are requested so that the
// latest session is covered over weekends and holidays.
const IntradayWindow = 4 * 24 * time.Hour

// barIterator is the subset of *chart.Iter used here.
type barIterator interface {
	Next() bool
	Bar() *finance.ChartBar
	Err() error
	Meta() finance.ChartMeta
}

// Provider implements market.Provider with finance-go.
type Provider struct {
	get func(*chart.Params) barIterator
	now func() time.Time
}

var _ market.Provider = (*Provider)(nil)

// New creates a finance-go backed provider.
func New() *Provider {
	return &Provider{
		get: func(p *chart.Params) barIterator { return chart.Get(p) },
		now: time.Now,
	}
}

// Name returns the provider identifier.
func (p *Provider) Name() string { return "finance-go" }

// DailyCloses returns daily closes between from and to.
func (p *Provider) DailyCloses(ctx context.Context, ticker string, from, to time.Time) ([]market.Bar, error) {
	params := &chart.Params{
		Symbol:   ticker,
		Start:    datetime.New(&from),
		End:      datetime.New(&to),
		Interval: datetime.OneDay,
	}
	return p.collect(ctx, ticker, params)
}

// IntradayCloses returns the 1-minute closes of the latest session.
func (p *Provider) IntradayCloses(ctx context.Context, ticker string) ([]market.Bar, error) {
	end := p.now()
	start := end.Add(-IntradayWindow)
	params := &chart.Params{
		Symbol:   ticker,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneMin,
	}
	bars, err := p.collect(ctx, ticker, params)
	if err != nil {
		return nil, err
	}
	return lastSession(bars), nil
}

func (p *Provider) collect(ctx context.Context, ticker string, params *chart.Params) ([]market.Bar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	iter := p.get(params)
	var bars []market.Bar
	for iter.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b := iter.Bar()
		if b == nil || b.Close.IsZero() {
			continue
		}
		bars = append(bars, market.Bar{
			Time:  time.Unix(int64(b.Timestamp), 0),
			Close: b.Close.InexactFloat64(),
		})
	}
	if err := iter.Err(); err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("finance-go %s: %v: %w", ticker, err, market.ErrNoData)
		}
		return nil, fmt.Errorf("finance-go %s: %w", ticker, err)
	}

	// Meta is filled once the first page is read. Without a zone name the
	// bars stay in UTC, never in the host's zone.
	loc := market.ExchangeLocation(iter.Meta().ExchangeTimezoneName, 0)
	for i := range bars {
		bars[i].Time = bars[i].Time.In(loc)
	}
	return bars, nil
}

// lastSession keeps the bars sharing the calendar date of the newest bar.
func lastSession(bars []market.Bar) []market.Bar {
	last, ok := market.Last(bars)
	if !ok {
		return bars
	}
	day := last.Time.Format("2006-01-02")
	i := len(bars)
	for i > 0 && bars[i-1].Time.Format("2006-01-02") == day {
		i--
	}
	return bars[i:]
}

func isNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") || strings.Contains(msg, "no data found")
}
