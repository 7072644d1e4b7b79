package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/causelist"
)

// Ensure LoggingSearchService implements causelist.SearchService.
var _ causelist.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with debug logging.
type LoggingSearchService struct {
	next   causelist.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next causelist.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

func (s *LoggingSearchService) CreateSearch(ctx context.Context, search *causelist.Search) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("record search",
			"id", search.ID,
			"query", search.Query,
			"matches", len(search.Matches),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateSearch(ctx, search)
}

func (s *LoggingSearchService) FindSearchByID(ctx context.Context, id string) (*causelist.Search, error) {
	return s.next.FindSearchByID(ctx, id)
}

func (s *LoggingSearchService) FindSearches(ctx context.Context, filter causelist.SearchFilter) (searches []*causelist.Search, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find searches",
			"limit", filter.Limit,
			"count", len(searches),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSearches(ctx, filter)
}
