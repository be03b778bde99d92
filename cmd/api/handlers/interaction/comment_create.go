package interaction

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/henrygambles/Xtube-Cloud/cmd/api/router/authfunc"
	"github.com/henrygambles/Xtube-Cloud/cmd/api/service"
	"github.com/henrygambles/Xtube-Cloud/pkg/errno"
)

func CreateComment(ctx context.Context, c *app.RequestContext) {
	user := authfunc.CurrentUser(c)
	if user == nil {
		SendError(c, errno.AuthorizationFailedErr)
		return
	}
	var req CreateCommentParam
	if err := c.BindAndValidate(&req); err != nil {
		SendError(c, errno.ParamErr.WithMessage(err.Error()))
		return
	}
	comment, err := service.NewCommentService(ctx).Create(pathParam(c, "id"), user, req.Text)
	if err != nil {
		SendError(c, err)
		return
	}
	c.JSON(consts.StatusCreated, utils.H{"comment": comment})
}
