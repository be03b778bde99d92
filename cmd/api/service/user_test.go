package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henrygambles/Xtube-Cloud/pkg/errno"
)

func TestCreateUserAndLogin(t *testing.T) {
	setup(t)
	ctx := context.Background()

	user, err := NewCreateUserService(ctx).CreateUser("alice", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, user.UserId)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	got, err := NewLoginUserService(ctx).LoginUser("alice", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.UserId, got.UserId)
}

func TestCreateUserValidation(t *testing.T) {
	setup(t)
	svc := NewCreateUserService(context.Background())

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"missing username", "", "hunter22"},
		{"missing password", "alice", ""},
		{"username too short", "al", "hunter22"},
		{"username too long", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "hunter22"},
		{"password too short", "alice", "short"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateUser(tc.username, tc.password)
			assert.EqualValues(t, errno.ParamErrCode, errno.ConvertErr(err).ErrCode)
		})
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	setup(t)
	svc := NewCreateUserService(context.Background())

	_, err := svc.CreateUser("alice", "hunter22")
	require.NoError(t, err)

	_, err = svc.CreateUser("Alice", "another1")
	assert.EqualValues(t, errno.UserAlreadyExistCode, errno.ConvertErr(err).ErrCode)
}

// Users returned by the services are snapshots, so session state held by one
// request can be read while another request updates the stored record. Run
// with the race detector to catch any store pointer leaking out of its lock.
func TestSessionUsersDetachedFromStore(t *testing.T) {
	setup(t)
	ctx := context.Background()

	created, err := NewCreateUserService(ctx).CreateUser("alice", "hunter22")
	require.NoError(t, err)
	session, err := NewLoginUserService(ctx).LoginUser("alice", "hunter22")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = session.ProfilePic
				_ = created.Username
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 100; j++ {
			_, err := NewUpdateAvatarService(ctx).UpdateAvatar(session.UserId, "alice.png")
			assert.NoError(t, err)
		}
	}()
	wg.Wait()

	// The snapshot taken at login never sees later writes.
	assert.Empty(t, session.ProfilePic)
	fresh, err := NewLoginUserService(ctx).LoginUser("alice", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "alice.png", fresh.ProfilePic)
}

func TestLoginUserRejectsBadCredentials(t *testing.T) {
	setup(t)
	ctx := context.Background()

	_, err := NewCreateUserService(ctx).CreateUser("alice", "hunter22")
	require.NoError(t, err)

	svc := NewLoginUserService(ctx)
	_, err = svc.LoginUser("alice", "wrongpass")
	assert.EqualValues(t, errno.AuthorizationFailedCode, errno.ConvertErr(err).ErrCode)

	_, err = svc.LoginUser("nobody", "hunter22")
	assert.EqualValues(t, errno.AuthorizationFailedCode, errno.ConvertErr(err).ErrCode)
}
