package service

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/henrygambles/Xtube-Cloud/cmd/api/dal/db"
	"github.com/henrygambles/Xtube-Cloud/cmd/api/infras/catalog"
)

type VideoSummary struct {
	Id            string `json:"id"`
	Title         string `json:"title"`
	StreamUrl     string `json:"streamUrl,omitempty"`
	EmbedUrl      string `json:"embedUrl,omitempty"`
	PosterUrl     string `json:"posterUrl,omitempty"`
	Views         int64  `json:"views"`
	Likes         int64  `json:"likes"`
	Dislikes      int64  `json:"dislikes"`
	CommentsCount int    `json:"commentsCount"`
	UploadedAt    string `json:"uploadedAt"`
}

type SyncVideosService struct {
	ctx context.Context
}

func NewSyncVideosService(ctx context.Context) *SyncVideosService {
	return &SyncVideosService{ctx: ctx}
}

// Sync reconciles the store against the catalog: metadata appears for new
// videos with zeroed counters and disappears, along with reaction records,
// for videos that left the catalog. Safe to run on every listing request.
func (s *SyncVideosService) Sync() ([]*VideoSummary, error) {
	entries, err := videoSource.Entries(s.ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "catalog enumeration failed")
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].UploadedAt.After(entries[j].UploadedAt)
	})

	known := make(map[string]*catalog.Entry, len(entries))
	for _, e := range entries {
		known[e.Id] = e
	}

	summaries := make([]*VideoSummary, 0, len(entries))
	err = db.Mutate(s.ctx, func(st *db.Store) error {
		for id := range st.Videos {
			if _, ok := known[id]; !ok {
				st.RemoveVideo(id)
			}
		}
		for _, e := range entries {
			meta := st.EnsureVideo(e.Id)
			summaries = append(summaries, &VideoSummary{
				Id:            e.Id,
				Title:         e.Title,
				StreamUrl:     e.StreamUrl,
				EmbedUrl:      e.EmbedUrl,
				PosterUrl:     e.PosterUrl,
				Views:         meta.Views,
				Likes:         meta.Likes,
				Dislikes:      meta.Dislikes,
				CommentsCount: len(meta.Comments),
				UploadedAt:    e.UploadedAt.UTC().Format(time.RFC3339),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
