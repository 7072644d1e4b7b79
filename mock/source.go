package mock

import (
	"context"

	"github.com/fwojciec/causelist"
)

var _ causelist.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of causelist.DocumentSource.
type DocumentSource struct {
	LoadFn func(ctx context.Context, location string) (*causelist.Document, error)
}

func (s *DocumentSource) Load(ctx context.Context, location string) (*causelist.Document, error) {
	return s.LoadFn(ctx, location)
}
