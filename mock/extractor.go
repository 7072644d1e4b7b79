package mock

import "github.com/fwojciec/causelist"

var _ causelist.MatchExtractor = (*MatchExtractor)(nil)

// MatchExtractor is a mock implementation of causelist.MatchExtractor.
type MatchExtractor struct {
	ExtractMatchesFn func(html string, m causelist.Matcher, baseURL string) ([]*causelist.Match, error)
}

func (e *MatchExtractor) ExtractMatches(html string, m causelist.Matcher, baseURL string) ([]*causelist.Match, error) {
	return e.ExtractMatchesFn(html, m, baseURL)
}

var _ causelist.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of causelist.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}

var _ causelist.Matcher = (*Matcher)(nil)

// Matcher is a mock implementation of causelist.Matcher.
type Matcher struct {
	MatchFn func(text string) bool
}

func (m *Matcher) Match(text string) bool {
	return m.MatchFn(text)
}
