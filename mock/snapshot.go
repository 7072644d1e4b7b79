package mock

import (
	"context"

	"github.com/fwojciec/causelist"
)

var _ causelist.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is a mock implementation of causelist.SnapshotStore.
type SnapshotStore struct {
	SaveFn   func(ctx context.Context, snap *causelist.Snapshot) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *SnapshotStore) Save(ctx context.Context, snap *causelist.Snapshot) error {
	return s.SaveFn(ctx, snap)
}

func (s *SnapshotStore) Commit() error {
	return s.CommitFn()
}

func (s *SnapshotStore) Abort() error {
	return s.AbortFn()
}
