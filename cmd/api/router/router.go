package router

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/henrygambles/Xtube-Cloud/cmd/api/handlers/interaction"
	"github.com/henrygambles/Xtube-Cloud/cmd/api/handlers/user"
	"github.com/henrygambles/Xtube-Cloud/cmd/api/handlers/video"
	"github.com/henrygambles/Xtube-Cloud/cmd/api/router/authfunc"
	"github.com/henrygambles/Xtube-Cloud/config"
)

func Register(r *server.Hertz) {
	r.Use(authfunc.AttachUser())

	api := r.Group("/api")
	{
		api.POST("/signup", user.Signup)
		api.POST("/login", user.Login)
		api.POST("/logout", user.Logout)
		api.GET("/me", user.Me)
		api.POST("/profile-picture", append(authfunc.Auth(), user.UploadProfilePicture)...)

		api.GET("/videos", video.FeedList)
		api.POST("/videos/:id/view", video.Visit)
		api.POST("/videos/:id/react", interaction.ReactAction)
		api.GET("/videos/:id/comments", interaction.ListComments)
		api.POST("/videos/:id/comments", append(authfunc.Auth(), interaction.CreateComment)...)
	}

	// The streaming endpoint only exists when the site hosts the bytes itself.
	if config.ConfigInfo.Storage.Mode != "cloud" {
		r.GET("/videos/:filename", video.VideoStream)
	}

	r.Static("/profile-pics", config.ConfigInfo.Storage.ProfilePicsDir)
	r.NoRoute(servePublic)
}

// servePublic serves the static frontend with an index.html fallback, so
// client-side routes deep-link correctly.
func servePublic(ctx context.Context, c *app.RequestContext) {
	if string(c.Method()) != consts.MethodGet {
		c.JSON(consts.StatusNotFound, utils.H{"error": "Not found"})
		return
	}
	publicDir := config.ConfigInfo.Server.PublicDir
	reqPath := filepath.Clean(string(c.Path()))
	if reqPath != "/" {
		full := filepath.Join(publicDir, reqPath)
		if info, err := os.Stat(full); err == nil && info.Mode().IsRegular() {
			c.File(full)
			return
		}
	}
	c.File(filepath.Join(publicDir, "index.html"))
}
