package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/causelist"
	"github.com/google/uuid"
)

// timeLayout keeps a fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Compile-time interface verification.
var _ causelist.SearchService = (*SearchService)(nil)

// SearchService implements causelist.SearchService using SQLite.
type SearchService struct {
	db  *DB
	now func() time.Time
}

// NewSearchService creates a new SearchService.
func NewSearchService(db *DB) *SearchService {
	return &SearchService{db: db, now: time.Now}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// CreateSearch records a search and its matches in one transaction.
func (s *SearchService) CreateSearch(ctx context.Context, search *causelist.Search) error {
	if err := search.Validate(); err != nil {
		return err
	}

	search.ID = uuid.New().String()
	search.CreatedAt = s.now().UTC()
	search.MatchCount = len(search.Matches)
	if search.Content != "" {
		search.ContentHash = hashContent(search.Content)
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO searches (id, url, query, date, date_str, content_hash, match_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, search.ID, search.URL, search.Query, string(search.Date), search.DateStr, search.ContentHash,
		search.MatchCount, search.CreatedAt.Format(timeLayout)); err != nil {
		return err
	}

	for i, m := range search.Matches {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO matches (search_id, position, text, serial, court, pdf)
			VALUES (?, ?, ?, ?, ?, ?)
		`, search.ID, i, m.Text, nullable(m.Serial), nullable(m.Court), nullable(m.PDF)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindSearchByID retrieves a search by ID, including its matches.
func (s *SearchService) FindSearchByID(ctx context.Context, id string) (*causelist.Search, error) {
	search, err := scanSearch(s.db.QueryRowContext(ctx, `
		SELECT id, url, query, date, date_str, content_hash, match_count, created_at
		FROM searches
		WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, causelist.Errorf(causelist.ENOTFOUND, "search not found")
	}
	if err != nil {
		return nil, err
	}

	if search.Matches, err = s.findMatches(ctx, search.ID); err != nil {
		return nil, err
	}
	return search, nil
}

// FindSearches retrieves searches matching the filter, newest first.
func (s *SearchService) FindSearches(ctx context.Context, filter causelist.SearchFilter) ([]*causelist.Search, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, query, date, date_str, content_hash, match_count, created_at FROM searches WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	if filter.Limit <= 0 && filter.Offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}

	searches := []*causelist.Search{}
	for rows.Next() {
		search, err := scanSearch(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		searches = append(searches, search)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	// The pool holds a single connection, so rows must be closed before
	// matches are queried.
	rows.Close()

	for _, search := range searches {
		if search.Matches, err = s.findMatches(ctx, search.ID); err != nil {
			return nil, err
		}
	}
	return searches, nil
}

func (s *SearchService) findMatches(ctx context.Context, searchID string) ([]*causelist.Match, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT text, serial, court, pdf
		FROM matches
		WHERE search_id = ?
		ORDER BY position ASC
	`, searchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := []*causelist.Match{}
	for rows.Next() {
		var m causelist.Match
		var serial, court, pdf sql.NullString
		if err := rows.Scan(&m.Text, &serial, &court, &pdf); err != nil {
			return nil, err
		}
		m.Serial, m.Court, m.PDF = ptr(serial), ptr(court), ptr(pdf)
		matches = append(matches, &m)
	}
	return matches, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSearch(row scanner) (*causelist.Search, error) {
	var search causelist.Search
	var date, createdAt string

	if err := row.Scan(&search.ID, &search.URL, &search.Query, &date, &search.DateStr,
		&search.ContentHash, &search.MatchCount, &createdAt); err != nil {
		return nil, err
	}
	search.Date = causelist.ListingDate(date)

	var err error
	if search.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &search, nil
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func ptr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
