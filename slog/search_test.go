package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/causelist"
	"github.com/fwojciec/causelist/mock"
	clslog "github.com/fwojciec/causelist/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearchService(t *testing.T) {
	t.Parallel()

	t.Run("logs recorded searches", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.SearchService{
			CreateSearchFn: func(ctx context.Context, search *causelist.Search) error {
				search.ID = "abc"
				return nil
			},
		}

		err := clslog.NewLoggingSearchService(inner, logger).CreateSearch(context.Background(), &causelist.Search{
			Query:   "CNR X1",
			Matches: []*causelist.Match{{Text: "X1"}},
		})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "record search")
		assert.Contains(t, output, "id=abc")
		assert.Contains(t, output, "matches=1")
	})

	t.Run("delegates lookups", func(t *testing.T) {
		t.Parallel()

		logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		inner := &mock.SearchService{
			FindSearchByIDFn: func(ctx context.Context, id string) (*causelist.Search, error) {
				return &causelist.Search{ID: id}, nil
			},
			FindSearchesFn: func(ctx context.Context, filter causelist.SearchFilter) ([]*causelist.Search, error) {
				return []*causelist.Search{{ID: "1"}, {ID: "2"}}[:filter.Limit], nil
			},
		}
		svc := clslog.NewLoggingSearchService(inner, logger)

		found, err := svc.FindSearchByID(context.Background(), "abc")
		require.NoError(t, err)
		assert.Equal(t, "abc", found.ID)

		list, err := svc.FindSearches(context.Background(), causelist.SearchFilter{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}
