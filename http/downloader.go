package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/causelist"
)

// DefaultDownloadTimeout bounds a whole document download.
const DefaultDownloadTimeout = 30 * time.Second

// Ensure Downloader implements causelist.Downloader at compile time.
var _ causelist.Downloader = (*Downloader)(nil)

// Downloader streams linked documents to disk.
type Downloader struct {
	client    *http.Client
	userAgent string
}

// NewDownloader creates a new Downloader.
func NewDownloader(opts ...Option) *Downloader {
	o := newOptions(DefaultDownloadTimeout, opts)
	return &Downloader{client: o.client, userAgent: o.userAgent}
}

// Download writes the body at url to dest.
//
// The body is streamed into a temporary file in dest's directory and renamed
// into place once complete, so dest is either the full document or absent.
func (d *Downloader) Download(ctx context.Context, url, dest string) error {
	resp, err := get(ctx, d.client, d.userAgent, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".*.part")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("download %s: %w", url, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
