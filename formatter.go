package causelist

import (
	"fmt"
	"strings"
)

const (
	reportRule       = "============================================================"
	reportDetailsMax = 200
)

// FormatMatches formats search matches as a console report.
// Missing serials and courts print as N/A, missing links as Not available,
// and row text is cut to 200 characters.
func FormatMatches(matches []*Match, date ListingDate, dateStr string) string {
	var b strings.Builder

	if len(matches) == 0 {
		fmt.Fprintf(&b, "No listings found for the query on %s (%s).\n", date, dateStr)
		return b.String()
	}

	b.WriteString(reportRule + "\n")
	fmt.Fprintf(&b, "Found %d listing(s) for %s (%s)\n", len(matches), date, dateStr)
	b.WriteString(reportRule + "\n")

	for i, m := range matches {
		fmt.Fprintf(&b, "\n--- Match %d ---\n", i+1)
		fmt.Fprintf(&b, "Serial No.: %s\n", valueOr(m.Serial, "N/A"))
		fmt.Fprintf(&b, "Court:      %s\n", valueOr(m.Court, "N/A"))
		fmt.Fprintf(&b, "PDF Link:   %s\n", valueOr(m.PDF, "Not available"))
		fmt.Fprintf(&b, "Details:    %s...\n", Truncate(m.Text, reportDetailsMax))
	}

	return b.String()
}

// Truncate returns at most n runes of s.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
