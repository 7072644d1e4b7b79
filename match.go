package causelist

// Match is one cause list row that satisfies a query.
// Fields that could not be derived from the row are nil.
type Match struct {
	// Text is the row's visible text, whitespace-joined and trimmed.
	Text string `json:"text"`

	// Serial is the leading item number of the row, e.g. "12".
	Serial *string `json:"serial"`

	// Court is a best guess at the court or bench hearing the case.
	Court *string `json:"court"`

	// PDF is the first document link of the row, made absolute when the
	// link is root-relative and a base URL is known.
	PDF *string `json:"pdf"`
}

// MatchExtractor finds the rows of a cause list that satisfy a matcher.
//
// Implementations must be pure: no network or disk access, no shared mutable
// state, and identical input always yields an identical ordered result.
// Malformed markup is never an error.
type MatchExtractor interface {
	// ExtractMatches returns the matching rows in document order.
	// baseURL may be empty; it only resolves root-relative document links.
	ExtractMatches(html string, m Matcher, baseURL string) ([]*Match, error)
}

// TextExtractor renders the full text of a cause list.
type TextExtractor interface {
	// ExtractText returns every text node of the document separated by newlines.
	ExtractText(html string) (string, error)
}

// SearchQuery describes a search in persisted results.
type SearchQuery struct {
	CNR     *string     `json:"cnr"`
	CaseRe  *string     `json:"case_re"`
	URL     string      `json:"url"`
	Date    ListingDate `json:"date"`
	DateStr string      `json:"date_str"`
}

// SearchResult is the document written after a search.
type SearchResult struct {
	Query   SearchQuery `json:"query"`
	Matches []*Match    `json:"matches"`
}

// NewSearchResult builds the result document for a query against url.
// Matches is never nil so that it encodes as an empty list.
func NewSearchResult(q *Query, url string, date ListingDate, dateStr string, matches []*Match) *SearchResult {
	var sq SearchQuery
	if pattern := q.Pattern(); pattern != "" {
		sq.CaseRe = &pattern
	} else if q.CNR != "" {
		cnr := q.String()
		sq.CNR = &cnr
	}
	sq.URL = url
	sq.Date = date
	sq.DateStr = dateStr

	if matches == nil {
		matches = []*Match{}
	}
	return &SearchResult{Query: sq, Matches: matches}
}
