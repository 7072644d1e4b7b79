package mock

import (
	"context"

	"github.com/fwojciec/causelist"
)

var _ causelist.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of causelist.SearchService.
type SearchService struct {
	CreateSearchFn   func(ctx context.Context, search *causelist.Search) error
	FindSearchByIDFn func(ctx context.Context, id string) (*causelist.Search, error)
	FindSearchesFn   func(ctx context.Context, filter causelist.SearchFilter) ([]*causelist.Search, error)
}

func (s *SearchService) CreateSearch(ctx context.Context, search *causelist.Search) error {
	return s.CreateSearchFn(ctx, search)
}

func (s *SearchService) FindSearchByID(ctx context.Context, id string) (*causelist.Search, error) {
	return s.FindSearchByIDFn(ctx, id)
}

func (s *SearchService) FindSearches(ctx context.Context, filter causelist.SearchFilter) ([]*causelist.Search, error) {
	return s.FindSearchesFn(ctx, filter)
}
