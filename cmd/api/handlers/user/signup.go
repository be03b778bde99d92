package user

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/henrygambles/Xtube-Cloud/cmd/api/router/authfunc"
	"github.com/henrygambles/Xtube-Cloud/cmd/api/service"
	"github.com/henrygambles/Xtube-Cloud/pkg/errno"
)

func Signup(ctx context.Context, c *app.RequestContext) {
	var req SignupParam
	if err := c.BindAndValidate(&req); err != nil {
		SendError(c, errno.ParamErr.WithMessage(err.Error()))
		return
	}
	user, err := service.NewCreateUserService(ctx).CreateUser(req.Username, req.Password)
	if err != nil {
		SendError(c, err)
		return
	}
	if err := authfunc.SetAuthCookie(c, user.UserId); err != nil {
		SendError(c, err)
		return
	}
	c.JSON(consts.StatusOK, utils.H{"user": publicUser(user)})
}
