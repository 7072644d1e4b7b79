package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/causelist"
)

// Ensure SnapshotStore implements causelist.SnapshotStore at compile time.
var _ causelist.SnapshotStore = (*SnapshotStore)(nil)

// snapshotTmpDir holds pending snapshot files inside the output directory.
const snapshotTmpDir = ".snapshot.tmp"

// SnapshotStore implements causelist.SnapshotStore with atomic update semantics.
// Files are written to a temporary directory inside the output directory and
// moved into place on Commit. Other files in the output directory are left
// alone.
type SnapshotStore struct {
	baseDir string
	pending []string
}

// NewSnapshotStore creates a new SnapshotStore writing to baseDir.
func NewSnapshotStore(baseDir string) *SnapshotStore {
	return &SnapshotStore{baseDir: baseDir}
}

func (s *SnapshotStore) tempDir() string {
	return filepath.Join(s.baseDir, snapshotTmpDir)
}

// Save writes the snapshot's HTML, text, markdown and JSON summary.
// The markdown file is skipped when the snapshot has no markdown.
func (s *SnapshotStore) Save(ctx context.Context, snap *causelist.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	base := snap.BaseName()
	files := map[string]string{
		base + ".html": snap.HTML,
		base + ".txt":  snap.Text,
	}
	if snap.Markdown != "" {
		files[base+".md"] = snap.Markdown
	}

	for name, content := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(s.tempDir(), name), []byte(content), 0644); err != nil {
			return err
		}
		s.pending = append(s.pending, name)
	}

	summary := base + ".json"
	if err := WriteJSON(filepath.Join(s.tempDir(), summary), snap.Summary()); err != nil {
		return err
	}
	s.pending = append(s.pending, summary)
	return nil
}

// Commit moves every saved file into the output directory, replacing files
// of the same name, and removes the temporary directory.
func (s *SnapshotStore) Commit() error {
	for _, name := range s.pending {
		if err := os.Rename(filepath.Join(s.tempDir(), name), filepath.Join(s.baseDir, name)); err != nil {
			return err
		}
	}
	s.pending = nil
	return os.RemoveAll(s.tempDir())
}

// Abort discards every saved file.
func (s *SnapshotStore) Abort() error {
	s.pending = nil
	err := os.RemoveAll(s.tempDir())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
