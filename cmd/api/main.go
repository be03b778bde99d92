package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"

	"github.com/henrygambles/Xtube-Cloud/cmd/api/dal"
	"github.com/henrygambles/Xtube-Cloud/cmd/api/infras/blob"
	"github.com/henrygambles/Xtube-Cloud/cmd/api/infras/catalog"
	"github.com/henrygambles/Xtube-Cloud/cmd/api/router"
	"github.com/henrygambles/Xtube-Cloud/cmd/api/service"
	"github.com/henrygambles/Xtube-Cloud/config"
	"github.com/henrygambles/Xtube-Cloud/pkg/jwt"
	"github.com/henrygambles/Xtube-Cloud/pkg/oss"
)

func Init() {
	config.Init()
	jwt.Init(config.ConfigInfo.Auth.JwtSecret)
	dal.Init()

	if err := os.MkdirAll(config.ConfigInfo.Storage.ProfilePicsDir, 0o755); err != nil {
		hlog.Fatalf("failed to create profile pics dir: %v", err)
	}

	switch config.ConfigInfo.Storage.Mode {
	case "minio":
		if err := oss.InitMinio(); err != nil {
			hlog.Fatalf("failed to init minio: %v", err)
		}
		service.Init(catalog.NewMinioSource(), blob.NewMinioSource())
	case "cloud":
		service.Init(catalog.NewCloudSource(config.ConfigInfo.CloudVideos), nil)
	default:
		dir := config.ConfigInfo.Storage.VideoDir
		if err := os.MkdirAll(dir, 0o755); err != nil {
			hlog.Fatalf("failed to create video dir: %v", err)
		}
		service.Init(catalog.NewLocalSource(dir), blob.NewLocalSource(dir))
	}

	// Reconcile once at boot so the first listing is consistent.
	if _, err := service.NewSyncVideosService(context.Background()).Sync(); err != nil {
		hlog.Errorf("initial catalog sync failed: %v", err)
	}
}

func main() {
	Init()

	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(16*1024*1024),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"error": fmt.Sprintf("internal error: %v", err),
			})
		})))

	router.Register(r)

	go periodicSync()

	r.Spin()
}

// periodicSync keeps the store reconciled even when nobody asks for the
// listing, so removed files do not keep stale metadata around.
func periodicSync() {
	interval, err := time.ParseDuration(config.ConfigInfo.Sync.Interval)
	if err != nil || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	for range ticker.C {
		if _, err := service.NewSyncVideosService(context.Background()).Sync(); err != nil {
			hlog.Errorf("periodic catalog sync failed: %v", err)
		}
	}
}
