package video

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/henrygambles/Xtube-Cloud/cmd/api/service"
)

// FeedList reconciles the store against the catalog and returns every video,
// newest first.
func FeedList(ctx context.Context, c *app.RequestContext) {
	videos, err := service.NewSyncVideosService(ctx).Sync()
	if err != nil {
		SendError(c, err)
		return
	}
	c.JSON(consts.StatusOK, utils.H{"videos": videos})
}
