package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the format used for price point dates (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// QuoteRequest represents a single search submission
type QuoteRequest struct {
	ID          string    // correlation id for logs
	Ticker      string    // symbol as typed by the user, trimmed
	Lookback    int       // trailing calendar days requested from the provider
	SubmittedAt time.Time // when the search was submitted
}

// PricePoint is one trading day of a price series
type PricePoint struct {
	Date  string          // YYYY-MM-DD in the exchange's local time
	Close decimal.Decimal // close price rounded down to the nearest 0.05
}

// PriceSeries is a chronological sequence of price points
type PriceSeries []PricePoint

// Quote is the result of a successful lookup
type Quote struct {
	RequestID string
	Ticker    string
	Prices    PriceSeries
	Latest    decimal.Decimal // most recent intraday close, rounded like Prices
	Lookback  int             // lookback window the series was obtained with
	FetchedAt time.Time
}

// Dates returns the date labels of the series in order
func (ps PriceSeries) Dates() []string {
	dates := make([]string, len(ps))
	for i, p := range ps {
		dates[i] = p.Date
	}
	return dates
}

// Closes returns the close prices of the series as float64 values for plotting
func (ps PriceSeries) Closes() []float64 {
	closes := make([]float64, len(ps))
	for i, p := range ps {
		closes[i] = p.Close.InexactFloat64()
	}
	return closes
}

// First returns the first price of the series and whether it is present
func (ps PriceSeries) First() (decimal.Decimal, bool) {
	if len(ps) == 0 {
		return decimal.Decimal{}, false
	}
	return ps[0].Close, true
}

// HasData reports whether the quote carries anything that can be charted
func (q *Quote) HasData() bool {
	if q == nil {
		return false
	}
	_, ok := q.Prices.First()
	return ok
}

// Heading returns the text shown above the chart: ticker and last price on two lines
func (q *Quote) Heading(lastPriceLabel string) string {
	var b strings.Builder
	b.WriteString(q.Ticker)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s: %s", lastPriceLabel, q.Latest.StringFixed(2)))
	return b.String()
}
