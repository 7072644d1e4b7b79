// Package http provides HTTP implementations of causelist.Fetcher and
// causelist.Downloader. Pages are fetched as served; no JavaScript is run.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/causelist"
)

// DefaultFetchTimeout is the default timeout for page requests.
const DefaultFetchTimeout = 15 * time.Second

// DefaultUserAgent identifies the client to court websites.
const DefaultUserAgent = "ecourts-checker/1.0 (+https://example.com)"

// Ensure Fetcher implements causelist.Fetcher at compile time.
var _ causelist.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves cause list pages using HTTP GET requests.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// Option configures a Fetcher or Downloader.
type Option func(*options)

type options struct {
	timeout   time.Duration
	userAgent string
	client    *http.Client
}

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout for fetches and DefaultDownloadTimeout for
// downloads.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		o.userAgent = ua
	}
}

// WithHTTPClient uses client as the transport. Its Timeout is replaced by the
// configured timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.client = client
	}
}

func newOptions(timeout time.Duration, opts []Option) options {
	o := options{timeout: timeout, userAgent: DefaultUserAgent}
	for _, opt := range opts {
		opt(&o)
	}
	if o.userAgent == "" {
		o.userAgent = DefaultUserAgent
	}
	client := &http.Client{}
	if o.client != nil {
		c := *o.client
		client = &c
	}
	client.Timeout = o.timeout
	o.client = client
	return o
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	o := newOptions(DefaultFetchTimeout, opts)
	return &Fetcher{
		client:    o.client,
		userAgent: o.userAgent,
	}
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := get(ctx, f.client, f.userAgent, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// get issues a GET request and fails on any status outside 2xx.
// The caller closes the body on success.
func get(ctx context.Context, client *http.Client, userAgent, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return resp, nil
}
