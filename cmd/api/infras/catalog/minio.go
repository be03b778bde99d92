package catalog

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/henrygambles/Xtube-Cloud/pkg/oss"
	"github.com/henrygambles/Xtube-Cloud/pkg/ranges"
)

// MinioSource lists the configured bucket. The object key is the video id.
type MinioSource struct{}

func NewMinioSource() *MinioSource {
	return &MinioSource{}
}

func (s *MinioSource) Entries(ctx context.Context) ([]*Entry, error) {
	objects, err := oss.ListVideos(ctx)
	if err != nil {
		return nil, err
	}
	var entries []*Entry
	for _, object := range objects {
		if !ranges.Streamable(object.Key) {
			continue
		}
		entries = append(entries, &Entry{
			Id:         object.Key,
			Title:      strings.TrimSuffix(object.Key, filepath.Ext(object.Key)),
			StreamUrl:  "/videos/" + url.PathEscape(object.Key),
			UploadedAt: object.LastModified,
		})
	}
	return entries, nil
}

func (s *MinioSource) Has(ctx context.Context, id string) bool {
	if !ranges.Streamable(id) {
		return false
	}
	_, err := oss.StatVideo(ctx, id)
	return err == nil
}
