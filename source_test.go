package causelist_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/causelist"
	"github.com/fwojciec/causelist/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Loading a cause list
//
// A cause list is either a local snapshot or a page on the court's site.
// Local snapshots never get a base URL; fetched pages use their own URL.

func TestCompositeSource_ReadsFileURLFromDisk(t *testing.T) {
	t.Parallel()

	// Given a file reader that serves a snapshot
	var readPath string
	files := &mock.FileReader{
		ReadFileFn: func(_ context.Context, path string) (string, error) {
			readPath = path
			return "<table></table>", nil
		},
	}
	source := causelist.NewCompositeSource(files, nil)

	// When loading a file:// location
	doc, err := source.Load(context.Background(), "file:///tmp/list.html")

	// Then the prefix is stripped and no base URL is set
	require.NoError(t, err)
	assert.Equal(t, "/tmp/list.html", readPath)
	assert.Equal(t, "<table></table>", doc.HTML)
	assert.Empty(t, doc.BaseURL)
	assert.True(t, doc.Local)
}

func TestCompositeSource_ReadsAbsolutePathFromDisk(t *testing.T) {
	t.Parallel()

	files := &mock.FileReader{
		ReadFileFn: func(_ context.Context, path string) (string, error) {
			return "<ul><li>x</li></ul>", nil
		},
	}
	source := causelist.NewCompositeSource(files, nil)

	doc, err := source.Load(context.Background(), "/does/not/need/to/exist.html")

	require.NoError(t, err)
	assert.True(t, doc.Local)
	assert.Equal(t, "<ul><li>x</li></ul>", doc.HTML)
}

func TestCompositeSource_ReadsExistingRelativePathFromDisk(t *testing.T) {
	// Not parallel: changes the working directory.
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "list.html"), []byte("x"), 0644))
	t.Chdir(dir)

	files := &mock.FileReader{
		ReadFileFn: func(_ context.Context, path string) (string, error) {
			return "local", nil
		},
	}
	source := causelist.NewCompositeSource(files, nil)

	doc, err := source.Load(context.Background(), "list.html")

	require.NoError(t, err)
	assert.True(t, doc.Local)
}

func TestCompositeSource_FetchesRemoteURL(t *testing.T) {
	t.Parallel()

	// Given a fetcher that serves a page
	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			return "<html>" + url + "</html>", nil
		},
	}
	source := causelist.NewCompositeSource(nil, fetcher)

	// When loading an http location
	doc, err := source.Load(context.Background(), "https://example.com/list")

	// Then the page URL becomes the base URL
	require.NoError(t, err)
	assert.False(t, doc.Local)
	assert.Equal(t, "https://example.com/list", doc.BaseURL)
	assert.Equal(t, "<html>https://example.com/list</html>", doc.HTML)
}

func TestCompositeSource_ReportsUnavailableDocument(t *testing.T) {
	t.Parallel()

	t.Run("fetch failure", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("HTTP 503")
			},
		}
		source := causelist.NewCompositeSource(nil, fetcher)

		doc, err := source.Load(context.Background(), "https://example.com/list")

		require.Error(t, err)
		assert.Nil(t, doc)
		assert.Equal(t, causelist.EUNAVAILABLE, causelist.ErrorCode(err))
	})

	t.Run("read failure", func(t *testing.T) {
		t.Parallel()

		files := &mock.FileReader{
			ReadFileFn: func(_ context.Context, _ string) (string, error) {
				return "", os.ErrNotExist
			},
		}
		source := causelist.NewCompositeSource(files, nil)

		_, err := source.Load(context.Background(), "/missing.html")

		assert.Equal(t, causelist.EUNAVAILABLE, causelist.ErrorCode(err))
	})

	t.Run("empty location", func(t *testing.T) {
		t.Parallel()

		source := causelist.NewCompositeSource(nil, nil)

		_, err := source.Load(context.Background(), "")

		assert.Equal(t, causelist.EINVALID, causelist.ErrorCode(err))
	})
}
