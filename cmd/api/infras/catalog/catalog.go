// Package catalog abstracts where the list of playable videos comes from:
// a local directory, a MinIO bucket or a static cloud configuration.
package catalog

import (
	"context"
	"time"
)

// Entry is one playable item as the source reports it. StreamUrl is set for
// sources the site streams itself, EmbedUrl for externally hosted players.
type Entry struct {
	Id         string
	Title      string
	StreamUrl  string
	EmbedUrl   string
	PosterUrl  string
	UploadedAt time.Time
}

type Source interface {
	// Entries enumerates the authoritative set of videos.
	Entries(ctx context.Context) ([]*Entry, error)
	// Has reports whether id is currently part of the catalog.
	Has(ctx context.Context, id string) bool
}
