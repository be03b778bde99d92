package dal

import (
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"github.com/henrygambles/Xtube-Cloud/cmd/api/dal/db"
	"github.com/henrygambles/Xtube-Cloud/config"
)

func Init() {
	if err := db.Init(config.ConfigInfo.Storage.DataDir); err != nil {
		hlog.Fatalf("failed to init store: %v", err)
	}
}
