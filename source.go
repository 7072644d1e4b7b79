package causelist

import (
	"context"
	"os"
	"strings"
)

// Document is a cause list page ready for extraction.
type Document struct {
	// Location is the URL or path the document was requested by.
	Location string

	// HTML is the raw markup.
	HTML string

	// BaseURL resolves root-relative links. Empty for local snapshots.
	BaseURL string

	// Local is true when the document was read from disk.
	Local bool
}

// DocumentSource acquires cause list documents.
type DocumentSource interface {
	// Load returns the document at location.
	// Returns EUNAVAILABLE if it cannot be read or fetched.
	Load(ctx context.Context, location string) (*Document, error)
}

// Ensure CompositeSource implements DocumentSource at compile time.
var _ DocumentSource = (*CompositeSource)(nil)

// CompositeSource implements DocumentSource by reading local snapshots from
// disk and fetching everything else over the network.
//
// A location is local when it starts with file://, starts with / or names an
// existing path.
type CompositeSource struct {
	files   FileReader
	fetcher Fetcher
}

// NewCompositeSource creates a new CompositeSource.
func NewCompositeSource(files FileReader, fetcher Fetcher) *CompositeSource {
	return &CompositeSource{files: files, fetcher: fetcher}
}

// Load implements DocumentSource.
func (s *CompositeSource) Load(ctx context.Context, location string) (*Document, error) {
	if location == "" {
		return nil, Errorf(EINVALID, "cause list location required")
	}

	if path, ok := LocalPath(location); ok {
		html, err := s.files.ReadFile(ctx, path)
		if err != nil {
			return nil, Errorf(EUNAVAILABLE, "failed to read local file %s: %v", path, err)
		}
		return &Document{Location: location, HTML: html, Local: true}, nil
	}

	html, err := s.fetcher.Fetch(ctx, location)
	if err != nil {
		return nil, Errorf(EUNAVAILABLE, "failed to fetch %s: %v", location, err)
	}
	return &Document{Location: location, HTML: html, BaseURL: location}, nil
}

// LocalPath reports whether location refers to a local file and returns its path.
func LocalPath(location string) (string, bool) {
	if path, ok := strings.CutPrefix(location, "file://"); ok {
		return path, true
	}
	if strings.HasPrefix(location, "/") {
		return location, true
	}
	if _, err := os.Stat(location); err == nil {
		return location, true
	}
	return "", false
}
