package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/henrygambles/Xtube-Cloud/cmd/api/dal/db"
	"github.com/henrygambles/Xtube-Cloud/pkg/errno"
	"github.com/henrygambles/Xtube-Cloud/pkg/utils"
)

type CreateUserService struct {
	ctx context.Context
}

func NewCreateUserService(ctx context.Context) *CreateUserService {
	return &CreateUserService{ctx: ctx}
}

func (s *CreateUserService) CreateUser(username, password string) (*db.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errno.ParamErr.WithMessage("Username and password are required")
	}
	if len(username) < 3 || len(username) > 32 {
		return nil, errno.ParamErr.WithMessage("Username must be 3-32 characters")
	}
	if len(password) < 6 {
		return nil, errno.ParamErr.WithMessage("Password must be at least 6 characters")
	}

	hash, err := utils.Crypt(password)
	if err != nil {
		return nil, errors.WithMessage(err, "utils.Crypt failed")
	}
	user := &db.User{
		UserId:       uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
	}
	err = db.Mutate(s.ctx, func(st *db.Store) error {
		if st.FindUserByName(username) != nil {
			return errno.UserAlreadyExistErr
		}
		st.Users = append(st.Users, user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	// The store owns the appended record; hand back a detached copy.
	snapshot := *user
	return &snapshot, nil
}
