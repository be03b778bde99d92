package service

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/henrygambles/Xtube-Cloud/pkg/errno"
	"github.com/henrygambles/Xtube-Cloud/pkg/ranges"
)

// StreamPlan is everything the handler needs to answer a video request:
// the status to send, the byte window, and an open reader over exactly
// that window. Body is nil when Status is 416.
type StreamPlan struct {
	Status      int
	Start       int64
	End         int64
	Size        int64
	ContentType string
	Body        io.ReadCloser
}

func (p *StreamPlan) Length() int64 {
	return p.End - p.Start + 1
}

type StreamVideoService struct {
	ctx context.Context
}

func NewStreamVideoService(ctx context.Context) *StreamVideoService {
	return &StreamVideoService{ctx: ctx}
}

// Plan resolves an optional Range header against the named video and opens
// the selected byte window. The service holds no state, so overlapping
// requests for the same file never interfere.
func (s *StreamVideoService) Plan(name, rangeHeader string) (*StreamPlan, error) {
	if !videoSource.Has(s.ctx, name) {
		return nil, errno.NotFoundErr
	}
	size, err := blobSource.Stat(s.ctx, name)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to stat video")
	}

	res := ranges.Resolve(size, rangeHeader)
	plan := &StreamPlan{
		Status:      res.Status,
		Start:       res.Start,
		End:         res.End,
		Size:        size,
		ContentType: ranges.ContentType(name),
	}
	if res.Status == http.StatusRequestedRangeNotSatisfiable {
		return plan, nil
	}
	if plan.Length() <= 0 {
		plan.Body = io.NopCloser(strings.NewReader(""))
		return plan, nil
	}
	body, err := blobSource.OpenRange(s.ctx, name, res.Start, res.End)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to open video range")
	}
	plan.Body = body
	return plan, nil
}
