package causelist

import (
	"strings"
	"time"
)

// ListingDate selects which day's cause list is being checked.
type ListingDate string

// ListingDate constants.
const (
	Today    ListingDate = "today"
	Tomorrow ListingDate = "tomorrow"
)

// DateLayout is the day-month-year layout cause lists are published under.
const DateLayout = "02-01-2006"

// ParseListingDate parses "today" or "tomorrow", ignoring case.
// An empty string selects Today.
func ParseListingDate(s string) (ListingDate, error) {
	switch ListingDate(strings.ToLower(strings.TrimSpace(s))) {
	case "", Today:
		return Today, nil
	case Tomorrow:
		return Tomorrow, nil
	}
	return "", Errorf(EINVALID, "date must be 'today' or 'tomorrow'")
}

// Time returns the calendar day the listing date refers to, relative to now.
func (d ListingDate) Time(now time.Time) time.Time {
	if d == Tomorrow {
		return now.AddDate(0, 0, 1)
	}
	return now
}

// DateString formats the listing date as DD-MM-YYYY relative to now.
func (d ListingDate) DateString(now time.Time) string {
	return d.Time(now).Format(DateLayout)
}

// DateStrings returns the DD-MM-YYYY strings for today and tomorrow.
func DateStrings(now time.Time) map[ListingDate]string {
	return map[ListingDate]string{
		Today:    Today.DateString(now),
		Tomorrow: Tomorrow.DateString(now),
	}
}
