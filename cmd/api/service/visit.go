package service

import (
	"context"

	"github.com/henrygambles/Xtube-Cloud/cmd/api/dal/db"
	"github.com/henrygambles/Xtube-Cloud/pkg/errno"
)

type VisitService struct {
	ctx context.Context
}

func NewVisitService(ctx context.Context) *VisitService {
	return &VisitService{ctx: ctx}
}

// AddView bumps the view counter and returns the new total.
func (s *VisitService) AddView(videoId string) (int64, error) {
	if !videoSource.Has(s.ctx, videoId) {
		return 0, errno.NotFoundErr
	}
	var views int64
	err := db.Mutate(s.ctx, func(st *db.Store) error {
		meta := st.EnsureVideo(videoId)
		meta.Views++
		views = meta.Views
		return nil
	})
	if err != nil {
		return 0, err
	}
	return views, nil
}
