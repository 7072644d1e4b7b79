package causelist

import (
	"context"
	"time"
)

// Search is a recorded search against a cause list.
type Search struct {
	ID          string      `json:"id"`
	URL         string      `json:"url"`
	Query       string      `json:"query"`
	Date        ListingDate `json:"date"`
	DateStr     string      `json:"date_str"`
	ContentHash string      `json:"content_hash"`
	MatchCount  int         `json:"match_count"`
	Matches     []*Match    `json:"matches"`
	CreatedAt   time.Time   `json:"created_at"`

	// Content is the searched HTML. It is hashed, not stored.
	Content string `json:"-"`
}

// Validate returns an error if the search contains invalid fields.
func (s *Search) Validate() error {
	if s.URL == "" {
		return Errorf(EINVALID, "search URL required")
	}
	if s.Query == "" {
		return Errorf(EINVALID, "search query required")
	}
	return nil
}

// SearchService represents a service for recording searches.
type SearchService interface {
	// CreateSearch records a search and its matches.
	CreateSearch(ctx context.Context, search *Search) error

	// FindSearchByID retrieves a search by ID, including its matches.
	// Returns ENOTFOUND if search does not exist.
	FindSearchByID(ctx context.Context, id string) (*Search, error)

	// FindSearches retrieves searches matching the filter, newest first.
	FindSearches(ctx context.Context, filter SearchFilter) ([]*Search, error)
}

// SearchFilter represents a filter for FindSearches.
type SearchFilter struct {
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
