package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/henrygambles/Xtube-Cloud/cmd/api/dal/db"
	"github.com/henrygambles/Xtube-Cloud/cmd/api/infras/catalog"
)

type fakeSource struct {
	entries []*catalog.Entry
}

func (f *fakeSource) Entries(ctx context.Context) ([]*catalog.Entry, error) {
	return f.entries, nil
}

func (f *fakeSource) Has(ctx context.Context, id string) bool {
	for _, e := range f.entries {
		if e.Id == id {
			return true
		}
	}
	return false
}

func (f *fakeSource) add(ids ...string) {
	for _, id := range ids {
		f.entries = append(f.entries, &catalog.Entry{
			Id:         id,
			Title:      id,
			UploadedAt: time.Unix(int64(1700000000+len(f.entries)), 0).UTC(),
		})
	}
}

func (f *fakeSource) remove(id string) {
	kept := f.entries[:0]
	for _, e := range f.entries {
		if e.Id != id {
			kept = append(kept, e)
		}
	}
	f.entries = kept
}

// setup points the service globals at a fresh store and fake catalog.
func setup(t *testing.T, ids ...string) *fakeSource {
	t.Helper()
	require.NoError(t, db.Init(t.TempDir()))
	src := &fakeSource{}
	src.add(ids...)
	Init(src, nil)
	return src
}
