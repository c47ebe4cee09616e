// Package httpx builds the HTTP client shared by the market-data providers.
package httpx

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"
)

// DefaultUserAgent is sent when no user agent is configured. Yahoo rejects
// requests without a browser-like agent.
const DefaultUserAgent = "Mozilla/5.0 (compatible; finance-dashboard/1.0)"

// Options configures NewClient.
type Options struct {
	// Timeout bounds a whole request. Zero means no timeout, like http.DefaultClient.
	Timeout time.Duration
	// Proxy overrides the proxy taken from the environment.
	Proxy string
	// UserAgent is set on requests that don't carry one.
	UserAgent string
}

// NewClient returns an http.Client with an explicit transport. Requests made
// through it get the configured user agent.
func NewClient(opts Options) (*http.Client, error) {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     true,
	}
	if opts.Proxy != "" {
		u, err := url.Parse(opts.Proxy)
		if err != nil {
			return nil, fmt.Errorf("parse proxy url: %w", err)
		}
		transport.Proxy = http.ProxyURL(u)
	}

	ua := opts.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}

	return &http.Client{
		Timeout:   opts.Timeout,
		Transport: &userAgentTransport{next: transport, userAgent: ua},
	}, nil
}

// userAgentTransport sets the User-Agent header when the request has none.
type userAgentTransport struct {
	next      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.next.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.next.RoundTrip(r)
}
