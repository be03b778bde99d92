package blob

import (
	"context"
	"io"

	"github.com/henrygambles/Xtube-Cloud/pkg/oss"
)

// MinioSource streams byte windows out of the configured bucket.
type MinioSource struct{}

func NewMinioSource() *MinioSource {
	return &MinioSource{}
}

func (s *MinioSource) Stat(ctx context.Context, id string) (int64, error) {
	info, err := oss.StatVideo(ctx, id)
	if err != nil {
		return 0, err
	}
	return info.Size, nil
}

func (s *MinioSource) OpenRange(ctx context.Context, id string, start, end int64) (io.ReadCloser, error) {
	return oss.GetVideoRange(ctx, id, start, end)
}
