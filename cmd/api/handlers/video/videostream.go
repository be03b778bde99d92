package video

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/henrygambles/Xtube-Cloud/cmd/api/service"
)

// VideoStream serves a video file, honoring single byte-range requests so
// players can seek and probe trailing container metadata. The body is handed
// to hertz as a sized stream, nothing buffers the whole file and the write
// loop stops as soon as the client goes away.
func VideoStream(ctx context.Context, c *app.RequestContext) {
	name := pathParam(c, "filename")
	rangeHeader := string(c.GetHeader("Range"))

	plan, err := service.NewStreamVideoService(ctx).Plan(name, rangeHeader)
	if err != nil {
		SendError(c, err)
		return
	}

	c.Header("Accept-Ranges", "bytes")
	if plan.Status == consts.StatusRequestedRangeNotSatisfiable {
		hlog.CtxWarnf(ctx, "unsatisfiable range %q for %s (size %d)", rangeHeader, name, plan.Size)
		c.Header("Content-Range", fmt.Sprintf("bytes */%d", plan.Size))
		c.Status(consts.StatusRequestedRangeNotSatisfiable)
		return
	}

	c.Header("Content-Type", plan.ContentType)
	if plan.Status == consts.StatusPartialContent {
		c.Header("Content-Range", fmt.Sprintf("bytes %d-%d/%d", plan.Start, plan.End, plan.Size))
	}
	c.Status(plan.Status)
	c.SetBodyStream(plan.Body, bodySize(plan.Length()))
}
