package video

import (
	"math"
	"net/url"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/henrygambles/Xtube-Cloud/pkg/errno"
)

// SendError pack an error into a status code and JSON body
func SendError(c *app.RequestContext, err error) {
	Err := errno.ConvertErr(err)
	c.JSON(statusOf(Err), utils.H{"error": Err.ErrMsg})
}

func statusOf(e errno.ErrNo) int {
	switch e.ErrCode {
	case errno.ParamErrCode:
		return consts.StatusBadRequest
	case errno.NotFoundErrCode:
		return consts.StatusNotFound
	case errno.AuthorizationFailedCode:
		return consts.StatusUnauthorized
	case errno.UserAlreadyExistCode:
		return consts.StatusConflict
	case errno.RangeUnsatisfiableCode:
		return consts.StatusRequestedRangeNotSatisfiable
	default:
		return consts.StatusInternalServerError
	}
}

// bodySize narrows a byte-window length for SetBodyStream. A window wider
// than the platform int (ranges past 2 GiB on 32-bit) falls back to chunked
// encoding instead of truncating.
func bodySize(n int64) int {
	if n > math.MaxInt {
		return -1
	}
	return int(n)
}

// pathParam returns a decoded path parameter, ids arrive percent-encoded
// when filenames carry spaces.
func pathParam(c *app.RequestContext, name string) string {
	raw := c.Param(name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
