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

// ReactAction records a like or dislike for whoever sent the request,
// authenticated or guest.
func ReactAction(ctx context.Context, c *app.RequestContext) {
	var req ReactParam
	if err := c.BindAndValidate(&req); err != nil {
		SendError(c, errno.ParamErr.WithMessage(err.Error()))
		return
	}
	identityKey := authfunc.IdentityKey(c)
	likes, dislikes, err := service.NewReactionService(ctx).React(pathParam(c, "id"), identityKey, req.Type)
	if err != nil {
		SendError(c, err)
		return
	}
	c.JSON(consts.StatusOK, utils.H{"likes": likes, "dislikes": dislikes})
}
