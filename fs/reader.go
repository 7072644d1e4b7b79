// Package fs provides file-based storage for cause lists and search results.
package fs

import (
	"context"
	"os"

	"github.com/fwojciec/causelist"
)

// Ensure FileReader implements causelist.FileReader at compile time.
var _ causelist.FileReader = (*FileReader)(nil)

// FileReader reads saved cause list pages from disk.
type FileReader struct{}

// NewFileReader creates a new FileReader.
func NewFileReader() *FileReader {
	return &FileReader{}
}

// ReadFile returns the contents of path as a string.
func (r *FileReader) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
