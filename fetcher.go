package causelist

import "context"

// Fetcher retrieves cause list HTML from URLs.
type Fetcher interface {
	// Fetch downloads the page at url and returns its body.
	// Non-2xx responses are errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// FileReader reads local cause list snapshots.
type FileReader interface {
	ReadFile(ctx context.Context, path string) (string, error)
}

// Downloader saves a linked document, typically a PDF, to a local file.
type Downloader interface {
	// Download streams url into dest. On failure no partial file is left behind.
	Download(ctx context.Context, url, dest string) error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
