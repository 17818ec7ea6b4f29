package mock

import (
	"context"

	"github.com/jpsouza/lattes"
)

var _ lattes.FingerprintIndex = (*FingerprintIndex)(nil)

// FingerprintIndex is a mock implementation of lattes.FingerprintIndex.
type FingerprintIndex struct {
	ObserveFn func(ctx context.Context, entry lattes.IndexEntry) (lattes.IndexOutcome, error)
	FindFn    func(ctx context.Context, fingerprint string) (*lattes.IndexEntry, error)
}

func (i *FingerprintIndex) Observe(ctx context.Context, entry lattes.IndexEntry) (lattes.IndexOutcome, error) {
	return i.ObserveFn(ctx, entry)
}

func (i *FingerprintIndex) Find(ctx context.Context, fingerprint string) (*lattes.IndexEntry, error) {
	return i.FindFn(ctx, fingerprint)
}
