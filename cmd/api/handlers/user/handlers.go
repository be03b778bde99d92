package user

import (
	"net/url"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/henrygambles/Xtube-Cloud/cmd/api/dal/db"
	"github.com/henrygambles/Xtube-Cloud/pkg/errno"
)

type SignupParam struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginParam struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

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

// publicUser is the user shape exposed over the API, password hash omitted.
func publicUser(u *db.User) utils.H {
	var picUrl interface{}
	if u.ProfilePic != "" {
		picUrl = "/profile-pics/" + url.PathEscape(u.ProfilePic)
	}
	return utils.H{
		"id":            u.UserId,
		"username":      u.Username,
		"profilePicUrl": picUrl,
	}
}
