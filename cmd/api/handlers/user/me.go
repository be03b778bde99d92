package user

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/henrygambles/Xtube-Cloud/cmd/api/router/authfunc"
)

func Me(ctx context.Context, c *app.RequestContext) {
	if u := authfunc.CurrentUser(c); u != nil {
		c.JSON(consts.StatusOK, utils.H{"user": publicUser(u)})
		return
	}
	c.JSON(consts.StatusOK, utils.H{"user": nil})
}
