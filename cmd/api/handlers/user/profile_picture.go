package user

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/henrygambles/Xtube-Cloud/cmd/api/router/authfunc"
	"github.com/henrygambles/Xtube-Cloud/cmd/api/service"
	"github.com/henrygambles/Xtube-Cloud/config"
	"github.com/henrygambles/Xtube-Cloud/pkg/errno"
)

const maxUploadBytes = 8 << 20

// UploadProfilePicture stores the uploaded image as <userID><ext> so a new
// upload replaces the old picture in place.
func UploadProfilePicture(ctx context.Context, c *app.RequestContext) {
	user := authfunc.CurrentUser(c)
	if user == nil {
		SendError(c, errno.AuthorizationFailedErr)
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		SendError(c, errno.ParamErr.WithMessage("No file provided"))
		return
	}
	if fh.Size > maxUploadBytes {
		SendError(c, errno.ParamErr.WithMessage("File exceeds the 8 MB upload limit"))
		return
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		SendError(c, errno.ParamErr.WithMessage("Only image uploads are allowed"))
		return
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext == "" {
		ext = ".png"
	}
	filename := user.UserId + ext
	dest := filepath.Join(config.ConfigInfo.Storage.ProfilePicsDir, filename)
	if err := c.SaveUploadedFile(fh, dest); err != nil {
		hlog.CtxErrorf(ctx, "failed to save profile picture: %v", err)
		SendError(c, errno.ServiceErr)
		return
	}

	updated, err := service.NewUpdateAvatarService(ctx).UpdateAvatar(user.UserId, filename)
	if err != nil {
		SendError(c, err)
		return
	}
	c.JSON(consts.StatusOK, utils.H{"user": publicUser(updated)})
}
