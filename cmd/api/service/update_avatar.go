package service

import (
	"context"

	"github.com/henrygambles/Xtube-Cloud/cmd/api/dal/db"
	"github.com/henrygambles/Xtube-Cloud/pkg/errno"
)

type UpdateAvatarService struct {
	ctx context.Context
}

func NewUpdateAvatarService(ctx context.Context) *UpdateAvatarService {
	return &UpdateAvatarService{ctx: ctx}
}

// UpdateAvatar records the stored profile picture filename for a user. The
// write happens on the store's record under its lock; the returned user is a
// detached copy.
func (s *UpdateAvatarService) UpdateAvatar(userId, filename string) (*db.User, error) {
	var user *db.User
	err := db.Mutate(s.ctx, func(st *db.Store) error {
		stored := st.FindUserById(userId)
		if stored == nil {
			return errno.AuthorizationFailedErr
		}
		stored.ProfilePic = filename
		snapshot := *stored
		user = &snapshot
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
