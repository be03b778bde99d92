// Package blob gives the streaming engine byte-level access to video files,
// independent of whether they live on disk or in object storage.
package blob

import (
	"context"
	"io"
)

type Source interface {
	// Stat returns the size of the named video in bytes.
	Stat(ctx context.Context, id string) (int64, error)
	// OpenRange opens a reader over the inclusive byte window [start, end].
	// The caller owns the returned reader.
	OpenRange(ctx context.Context, id string, start, end int64) (io.ReadCloser, error)
}
