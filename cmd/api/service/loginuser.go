package service

import (
	"context"

	"github.com/henrygambles/Xtube-Cloud/cmd/api/dal/db"
	"github.com/henrygambles/Xtube-Cloud/pkg/errno"
	"github.com/henrygambles/Xtube-Cloud/pkg/utils"
)

type LoginUserService struct {
	ctx context.Context
}

func NewLoginUserService(ctx context.Context) *LoginUserService {
	return &LoginUserService{ctx: ctx}
}

// LoginUser gives the same error for a missing user and a wrong password so
// the response does not leak which usernames exist.
func (s *LoginUserService) LoginUser(username, password string) (*db.User, error) {
	var user *db.User
	db.View(s.ctx, func(st *db.Store) {
		if u := st.FindUserByName(username); u != nil {
			snapshot := *u
			user = &snapshot
		}
	})
	if user == nil || !utils.VerifyPassword(password, user.PasswordHash) {
		return nil, errno.AuthorizationFailedErr.WithMessage("Invalid username or password")
	}
	return user, nil
}
