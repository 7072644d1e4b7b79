// Package goquery extracts case listings from cause list HTML using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/causelist"
)

// Compile-time interface verification.
var (
	_ causelist.MatchExtractor = (*Extractor)(nil)
	_ causelist.TextExtractor  = (*Extractor)(nil)
)

// Extractor finds matching rows in cause list HTML and derives their fields.
// It holds no state and is safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractMatches returns a match for every row whose text satisfies m,
// in document order. Rows with no visible text are skipped.
func (e *Extractor) ExtractMatches(html string, m causelist.Matcher, baseURL string) ([]*causelist.Match, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, causelist.Errorf(causelist.EINVALID, "failed to parse HTML: %v", err)
	}

	matches := []*causelist.Match{}
	for _, row := range Rows(doc) {
		text := RowText(row)
		if text == "" {
			continue
		}
		if !m.Match(text) {
			continue
		}
		matches = append(matches, &causelist.Match{
			Text:   text,
			Serial: Serial(row, text),
			Court:  Court(row, text),
			PDF:    DocumentLink(row, baseURL),
		})
	}

	return matches, nil
}

// ExtractText returns every text node of the document joined by newlines.
// Text nodes are kept as they are, whitespace included.
func (e *Extractor) ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", causelist.Errorf(causelist.EINVALID, "failed to parse HTML: %v", err)
	}
	return strings.Join(textNodes(doc.Selection), "\n"), nil
}
