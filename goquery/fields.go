package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	// serialRe matches an item number of up to four digits at the start of a string.
	serialRe = regexp.MustCompile(`^(\d{1,4})\b`)

	// courtRe matches a run of name-like characters ending in the word Court,
	// e.g. "Civil Judge Senior Division Court" or "Family Court".
	courtRe = regexp.MustCompile(`(?i)[A-Za-z .&'-]{4,}\bCourt\b`)
)

// Serial returns the item number of a row.
//
// The first cell is tried first, then the whole row text. Returns nil when
// neither starts with a number of up to four digits.
func Serial(row *goquery.Selection, text string) *string {
	if cell := row.Find("td").First(); cell.Length() > 0 {
		if s := leadingNumber(cellText(cell)); s != nil {
			return s
		}
	}
	return leadingNumber(text)
}

func leadingNumber(s string) *string {
	m := serialRe.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	return &m[1]
}

// Court returns a best guess at the court a row is listed before.
//
// Rows with at least two cells use the first non-empty cell among the second,
// third and fourth. Otherwise, or when those are all empty, the row text is
// searched for a phrase ending in "Court". The phrase stops at the word Court
// and is trimmed of surrounding spaces. Returns nil when nothing is found.
func Court(row *goquery.Selection, text string) *string {
	if cells := row.Find("td"); cells.Length() >= 2 {
		for i := 1; i <= 3 && i < cells.Length(); i++ {
			if t := cellText(cells.Eq(i)); t != "" {
				return &t
			}
		}
	}

	if m := courtRe.FindString(text); m != "" {
		court := strings.TrimSpace(m)
		return &court
	}
	return nil
}

// DocumentLink returns the document link of a row.
//
// Only the first anchor with an href is considered. Its target qualifies when
// it mentions "pdf" in any case. A root-relative target is appended to
// baseURL with trailing slashes removed; no other resolution happens.
// Returns nil when there is no qualifying link.
func DocumentLink(row *goquery.Selection, baseURL string) *string {
	a := row.Find("a[href]").First()
	if a.Length() == 0 {
		return nil
	}

	href, _ := a.Attr("href")
	href = strings.TrimSpace(href)

	if !strings.Contains(strings.ToLower(href), "pdf") {
		return nil
	}

	if baseURL != "" && strings.HasPrefix(href, "/") {
		href = strings.TrimRight(baseURL, "/") + href
	}
	return &href
}
