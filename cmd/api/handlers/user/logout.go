package user

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/henrygambles/Xtube-Cloud/cmd/api/router/authfunc"
)

func Logout(ctx context.Context, c *app.RequestContext) {
	authfunc.ClearAuthCookie(c)
	c.Status(consts.StatusNoContent)
}
