package causelist

import (
	"context"
	"time"
)

// Snapshot is a whole cause list saved without searching it.
type Snapshot struct {
	URL      string
	Date     ListingDate
	DateStr  string
	HTML     string
	Text     string
	Markdown string

	// SavedOn names the files; it is the day the snapshot was taken.
	SavedOn time.Time
}

// BaseName returns the file name stem shared by the snapshot's files,
// e.g. cause_list_today_2024-03-09.
func (s *Snapshot) BaseName() string {
	return "cause_list_" + string(s.Date) + "_" + s.SavedOn.Format("2006-01-02")
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.URL == "" {
		return Errorf(EINVALID, "snapshot URL required")
	}
	if s.Date == "" {
		return Errorf(EINVALID, "snapshot date required")
	}
	if s.SavedOn.IsZero() {
		return Errorf(EINVALID, "snapshot save date required")
	}
	return nil
}

// SnapshotSummary is the JSON companion written next to a snapshot.
type SnapshotSummary struct {
	Date       ListingDate `json:"date"`
	DateStr    string      `json:"date_str"`
	URL        string      `json:"url"`
	Downloaded bool        `json:"downloaded"`
}

// Summary returns the JSON companion of the snapshot.
func (s *Snapshot) Summary() SnapshotSummary {
	return SnapshotSummary{
		Date:       s.Date,
		DateStr:    s.DateStr,
		URL:        s.URL,
		Downloaded: true,
	}
}

// SnapshotStore persists snapshots to storage with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type SnapshotStore interface {
	Save(ctx context.Context, snap *Snapshot) error
	Commit() error
	Abort() error
}
