package video

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/henrygambles/Xtube-Cloud/cmd/api/service"
)

func Visit(ctx context.Context, c *app.RequestContext) {
	views, err := service.NewVisitService(ctx).AddView(pathParam(c, "id"))
	if err != nil {
		SendError(c, err)
		return
	}
	c.JSON(consts.StatusOK, utils.H{"views": views})
}
