package db

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"

	"github.com/henrygambles/Xtube-Cloud/pkg/errno"
)

var (
	mu     sync.Mutex
	data   *Store
	dbPath string
)

// Init loads the store from <dataDir>/db.json. A missing or unreadable file
// starts an empty store rather than failing the boot, matching how the site
// self-heals its state file.
func Init(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return errors.WithMessage(err, "failed to create data dir")
	}

	mu.Lock()
	defer mu.Unlock()
	dbPath = filepath.Join(dataDir, "db.json")
	data = &Store{}
	raw, err := os.ReadFile(dbPath)
	if err == nil {
		if err := json.Unmarshal(raw, data); err != nil {
			hlog.Warnf("db.json is not valid JSON, starting fresh: %v", err)
			data = &Store{}
		}
	}
	data.normalize()
	return nil
}

// Mutate runs fn under the store lock and persists the whole document before
// returning, so a mutation is on disk before its HTTP response goes out.
// When fn errors nothing is written; when the persist fails the in-memory
// document is rolled back, so a request that got a 500 leaves no trace.
func Mutate(ctx context.Context, fn func(s *Store) error) error {
	mu.Lock()
	defer mu.Unlock()
	snapshot, snapErr := json.Marshal(data)
	if err := fn(data); err != nil {
		return err
	}
	if err := persistLocked(); err != nil {
		hlog.CtxErrorf(ctx, "failed to persist store: %v", err)
		if snapErr == nil {
			restored := &Store{}
			if uerr := json.Unmarshal(snapshot, restored); uerr == nil {
				restored.normalize()
				data = restored
			}
		}
		return errno.StorageErr
	}
	return nil
}

// View runs fn under the store lock without persisting.
func View(ctx context.Context, fn func(s *Store)) {
	mu.Lock()
	defer mu.Unlock()
	fn(data)
}

// persistLocked rewrites db.json through a temp file so a crash mid-write
// never leaves a truncated document behind.
func persistLocked() error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errors.WithMessage(err, "failed to marshal store")
	}
	tmp := dbPath + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return errors.WithMessage(err, "failed to write store")
	}
	return os.Rename(tmp, dbPath)
}
