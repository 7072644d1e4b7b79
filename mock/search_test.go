package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/causelist"
	"github.com/fwojciec/causelist/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchService_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ causelist.SearchService = &mock.SearchService{}
}

func TestSearchService_CreateSearch(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CreateSearchFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *causelist.Search
		s := &mock.SearchService{
			CreateSearchFn: func(_ context.Context, search *causelist.Search) error {
				calledWith = search
				return nil
			},
		}

		search := &causelist.Search{
			URL:   "https://example.com/list",
			Query: "MHDS1234567890",
		}

		err := s.CreateSearch(context.Background(), search)

		require.NoError(t, err)
		assert.Equal(t, search, calledWith)
	})
}
