package catalog

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"github.com/henrygambles/Xtube-Cloud/config"
)

// CloudSource serves a fixed catalog of externally hosted streams from
// config, the deployment mode used when the site has no video files of its own.
type CloudSource struct {
	entries []*Entry
}

func NewCloudSource(videos []config.CloudVideo) *CloudSource {
	s := &CloudSource{}
	for _, v := range videos {
		uploadedAt, err := time.Parse(time.RFC3339, v.UploadedAt)
		if err != nil {
			hlog.Warnf("cloud video %s has invalid uploaded_at %q: %v", v.Id, v.UploadedAt, err)
		}
		s.entries = append(s.entries, &Entry{
			Id:         v.Id,
			Title:      v.Title,
			EmbedUrl:   v.EmbedUrl,
			PosterUrl:  v.PosterUrl,
			UploadedAt: uploadedAt,
		})
	}
	return s
}

func (s *CloudSource) Entries(ctx context.Context) ([]*Entry, error) {
	return s.entries, nil
}

func (s *CloudSource) Has(ctx context.Context, id string) bool {
	for _, e := range s.entries {
		if e.Id == id {
			return true
		}
	}
	return false
}
