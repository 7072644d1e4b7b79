package mock

import (
	"context"

	"github.com/fwojciec/causelist"
)

var _ causelist.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of causelist.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ causelist.FileReader = (*FileReader)(nil)

// FileReader is a mock implementation of causelist.FileReader.
type FileReader struct {
	ReadFileFn func(ctx context.Context, path string) (string, error)
}

func (r *FileReader) ReadFile(ctx context.Context, path string) (string, error) {
	return r.ReadFileFn(ctx, path)
}

var _ causelist.Downloader = (*Downloader)(nil)

// Downloader is a mock implementation of causelist.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, url, dest string) error
}

func (d *Downloader) Download(ctx context.Context, url, dest string) error {
	return d.DownloadFn(ctx, url, dest)
}

var _ causelist.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of causelist.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
