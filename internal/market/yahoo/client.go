// Package yahoo implements market.Provider on top of the public Yahoo Finance
// v8 chart endpoint.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ytget/finance-dashboard/internal/market"
)

// DefaultBaseURL is the Yahoo Finance query host
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Chart query values
const (
	IntervalDaily  = "1d"
	IntervalMinute = "1m"
	RangeOneDay    = "1d"
)

// HTTPClient describes an HTTP client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches chart data from Yahoo Finance.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	userAgent  string
}

// Client must satisfy the provider contract.
var _ market.Provider = (*Client)(nil)

// Option is a configuration option for the client.
type Option func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// NewClient creates a new Yahoo Finance client.
func NewClient(options ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Name returns the provider identifier.
func (c *Client) Name() string { return "yahoo" }

// DailyCloses returns daily closes between from and to.
func (c *Client) DailyCloses(ctx context.Context, ticker string, from, to time.Time) ([]market.Bar, error) {
	q := url.Values{}
	q.Set("period1", strconv.FormatInt(from.Unix(), 10))
	q.Set("period2", strconv.FormatInt(to.Unix(), 10))
	q.Set("interval", IntervalDaily)
	q.Set("includePrePost", "false")
	return c.fetchChart(ctx, ticker, q)
}

// IntradayCloses returns the 1-minute closes of the latest session.
func (c *Client) IntradayCloses(ctx context.Context, ticker string) ([]market.Bar, error) {
	q := url.Values{}
	q.Set("range", RangeOneDay)
	q.Set("interval", IntervalMinute)
	return c.fetchChart(ctx, ticker, q)
}

func (c *Client) fetchChart(ctx context.Context, ticker string, q url.Values) ([]market.Bar, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.baseURL, url.PathEscape(ticker), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}

	var chart chartResponse
	decodeErr := json.Unmarshal(body, &chart)

	// Yahoo answers unknown symbols with 404 and a chart.error payload
	if decodeErr == nil && chart.Chart.Error != nil {
		if chart.Chart.Error.Code == "Not Found" || resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("yahoo %s: %s: %w", ticker, chart.Chart.Error.Description, market.ErrNoData)
		}
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("yahoo %s: status %d: %w", ticker, resp.StatusCode, market.ErrNoData)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, truncate(string(body), 256))
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("yahoo decode: %w", decodeErr)
	}

	return chart.bars(ticker)
}

// chartResponse is the response structure from Yahoo Finance chart API.
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Meta struct {
		Symbol               string `json:"symbol"`
		Currency             string `json:"currency"`
		GMTOffset            int    `json:"gmtoffset"`
		ExchangeTimezoneName string `json:"exchangeTimezoneName"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Close []*float64 `json:"close"`
		} `json:"quote"`
	} `json:"indicators"`
}

// bars converts the first chart result into bars, skipping null samples
// (halts, holidays, minutes without trades).
func (r *chartResponse) bars(ticker string) ([]market.Bar, error) {
	if len(r.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo %s: empty result: %w", ticker, market.ErrNoData)
	}
	result := r.Chart.Result[0]
	// A known symbol with no trading days in range comes back without timestamps
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return []market.Bar{}, nil
	}

	loc := market.ExchangeLocation(result.Meta.ExchangeTimezoneName, result.Meta.GMTOffset)
	closes := result.Indicators.Quote[0].Close

	bars := make([]market.Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		bars = append(bars, market.Bar{
			Time:  time.Unix(ts, 0).In(loc),
			Close: *closes[i],
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
