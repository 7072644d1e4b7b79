package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/causelist"
)

// Ensure LoggingExtractor implements causelist.MatchExtractor.
var _ causelist.MatchExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a MatchExtractor with debug logging.
type LoggingExtractor struct {
	next   causelist.MatchExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next causelist.MatchExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractMatches delegates to the wrapped extractor and logs the result size.
func (e *LoggingExtractor) ExtractMatches(html string, m causelist.Matcher, baseURL string) (matches []*causelist.Match, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("extract matches",
			"bytes", len(html),
			"base_url", baseURL,
			"count", len(matches),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractMatches(html, m, baseURL)
}
